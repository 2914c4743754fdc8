package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"smartcars-insurance/internal/chat"
	"smartcars-insurance/internal/chat/usecase"
	"smartcars-insurance/internal/intent"
	"smartcars-insurance/internal/model"
	"smartcars-insurance/internal/rating"
	toolsClient "smartcars-insurance/internal/tools/client"
)

// mock dependencies

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

// fixedResolver returns the same intent for every question.
type fixedResolver struct {
	intent intent.Intent
}

func (f fixedResolver) Resolve(ctx context.Context, question string) intent.Intent {
	return f.intent
}

// mockTools serves canned records and computes the factors locally, so
// the pipeline under test sees the same numbers the real tool service
// would produce.
type mockTools struct {
	requests map[string]model.InsuranceRequest
	drivers  map[string]model.DriverProfile
	cars     map[string]model.CarInfo
	prices   map[string]model.ModelPrice

	failDriverLookup bool
}

func (m *mockTools) GetInsuranceRequest(ctx context.Context, emailOrID string) (model.InsuranceRequest, error) {
	if r, ok := m.requests[emailOrID]; ok {
		return r, nil
	}
	return model.InsuranceRequest{}, fmt.Errorf("tool get_insurance_request: %w", toolsClient.ErrNotFound)
}

func (m *mockTools) GetDriverProfile(ctx context.Context, nationalID string) (model.DriverProfile, error) {
	if m.failDriverLookup {
		return model.DriverProfile{}, errors.New("tool get_driver_profile: connection refused")
	}
	if d, ok := m.drivers[nationalID]; ok {
		return d, nil
	}
	return model.DriverProfile{}, fmt.Errorf("tool get_driver_profile: %w", toolsClient.ErrNotFound)
}

func (m *mockTools) GetCarInfo(ctx context.Context, plate string) (model.CarInfo, error) {
	if c, ok := m.cars[plate]; ok {
		return c, nil
	}
	return model.CarInfo{}, fmt.Errorf("tool get_car_info: %w", toolsClient.ErrNotFound)
}

func (m *mockTools) GetCarModelPrice(ctx context.Context, modelName string) (model.ModelPrice, error) {
	if p, ok := m.prices[modelName]; ok {
		return p, nil
	}
	return model.ModelPrice{}, fmt.Errorf("tool get_car_model_price: %w", toolsClient.ErrNotFound)
}

func (m *mockTools) CalculateRisk(ctx context.Context, age, infractionsCount int) (float64, error) {
	return rating.RiskFactor(age, infractionsCount), nil
}

func (m *mockTools) CalculateVehicleFactor(ctx context.Context, year int, price float64) (float64, error) {
	return rating.VehicleFactor(year, price), nil
}

func (m *mockTools) CalculatePremium(ctx context.Context, risk, vehicleFactor float64, plan model.Plan) (rating.Quote, error) {
	return rating.Premium(risk, vehicleFactor, plan)
}

func newMockTools() *mockTools {
	req := model.InsuranceRequest{
		ID: "34234", Email: "ana@example.com", FullName: "Ana García",
		NationalID: "11111111", Plate: "ABC123",
	}
	return &mockTools{
		requests: map[string]model.InsuranceRequest{
			"34234":           req,
			"ana@example.com": req,
		},
		drivers: map[string]model.DriverProfile{
			"11111111": {NationalID: "11111111", Birthdate: "1990-06-15", InfractionsCount: 2},
		},
		cars: map[string]model.CarInfo{
			"ABC123": {Plate: "ABC123", Year: 2021, Model: "Falcon GT", OwnerNationalID: "11111111"},
		},
		prices: map[string]model.ModelPrice{
			"Falcon GT": {Model: "Falcon GT", Price: 150000},
		},
	}
}

// fixedClock: 2024-06-14, one day before the driver's birthday, so the
// driver is 33 and lands in the 25-40 risk bracket.
func fixedClock() time.Time {
	return time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)
}

func newUseCase(tools toolsClient.IClient, in intent.Intent) chat.UseCase {
	return usecase.New(mockLogger{}, fixedResolver{intent: in}, tools).WithClock(fixedClock)
}

func TestAnswerPremiumByRequestID(t *testing.T) {
	uc := newUseCase(newMockTools(), intent.Intent{Type: intent.TypePremiumByRequestID, RequestID: "34234"})

	out, err := uc.Answer(context.Background(), "¿Cuál es la prima de la solicitud 34234?")
	if err != nil {
		t.Fatalf("Answer returned error: %v", err)
	}

	// age 33 → risk 1.2+0.2=1.4; 2021/150000 → vf 1.56; 350×1.4×1.56=764.4
	want := "La prima estimada de esta solicitud es de 764.40 smartcars (redondeada a 764 smartcars)."
	if out.Answer != want {
		t.Errorf("Answer = %q, want %q", out.Answer, want)
	}
	if out.Intent.Type != intent.TypePremiumByRequestID {
		t.Errorf("Intent.Type = %s", out.Intent.Type)
	}
}

func TestAnswerPremiumByEmail(t *testing.T) {
	uc := newUseCase(newMockTools(), intent.Intent{Type: intent.TypePremiumByEmail, Email: "ana@example.com"})

	out, err := uc.Answer(context.Background(), "¿Cuál es la prima para ana@example.com?")
	if err != nil {
		t.Fatalf("Answer returned error: %v", err)
	}
	want := "La prima estimada de esta solicitud es de 764.40 smartcars (redondeada a 764 smartcars)."
	if out.Answer != want {
		t.Errorf("Answer = %q, want %q", out.Answer, want)
	}
}

func TestAnswerApologyOnMissingRequest(t *testing.T) {
	tests := []struct {
		name string
		in   intent.Intent
		want string
	}{
		{
			name: "by id",
			in:   intent.Intent{Type: intent.TypePremiumByRequestID, RequestID: "99999"},
			want: chat.MsgNoRequestByID,
		},
		{
			name: "by email",
			in:   intent.Intent{Type: intent.TypePremiumByEmail, Email: "nadie@example.com"},
			want: chat.MsgNoRequestByEmail,
		},
		{
			name: "vehicle factor by id",
			in:   intent.Intent{Type: intent.TypeVehicleFactorByRequestID, RequestID: "99999"},
			want: chat.MsgNoRequestByID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(newMockTools(), tt.in)
			out, err := uc.Answer(context.Background(), "pregunta")
			if err != nil {
				t.Fatalf("apology path must not error: %v", err)
			}
			if out.Answer != tt.want {
				t.Errorf("Answer = %q, want %q", out.Answer, tt.want)
			}
		})
	}
}

func TestAnswerRejectionIsTheAnswer(t *testing.T) {
	tools := newMockTools()
	d := tools.drivers["11111111"]
	d.InfractionsCount = 11
	tools.drivers["11111111"] = d

	uc := newUseCase(tools, intent.Intent{Type: intent.TypePremiumByRequestID, RequestID: "34234"})
	out, err := uc.Answer(context.Background(), "¿Cuál es la prima de la solicitud 34234?")
	if err != nil {
		t.Fatalf("rejection path must not error: %v", err)
	}
	if out.Answer != rating.MsgRejectedInfractions {
		t.Errorf("Answer = %q, want infractions rejection", out.Answer)
	}
}

func TestAnswerOwnershipRejectionNamesPlate(t *testing.T) {
	tools := newMockTools()
	car := tools.cars["ABC123"]
	car.OwnerNationalID = "22222222"
	tools.cars["ABC123"] = car

	uc := newUseCase(tools, intent.Intent{Type: intent.TypePremiumByRequestID, RequestID: "34234"})
	out, err := uc.Answer(context.Background(), "prima 34234")
	if err != nil {
		t.Fatalf("Answer returned error: %v", err)
	}
	if out.Answer != rating.MsgRejectedNotOwner("ABC123") {
		t.Errorf("Answer = %q", out.Answer)
	}
}

func TestAnswerVehicleFactor(t *testing.T) {
	uc := newUseCase(newMockTools(), intent.Intent{Type: intent.TypeVehicleFactorByRequestID, RequestID: "34234"})

	out, err := uc.Answer(context.Background(), "¿Cuál es el factor del vehículo de la solicitud 34234?")
	if err != nil {
		t.Fatalf("Answer returned error: %v", err)
	}
	want := "El factor del vehículo para la solicitud 34234 es 1.5600."
	if out.Answer != want {
		t.Errorf("Answer = %q, want %q", out.Answer, want)
	}
}

func TestAnswerUnknownIntent(t *testing.T) {
	uc := newUseCase(newMockTools(), intent.Unknown())

	out, err := uc.Answer(context.Background(), "¿Qué hora es?")
	if err != nil {
		t.Fatalf("Answer returned error: %v", err)
	}
	if out.Answer != chat.MsgUnknownIntent {
		t.Errorf("Answer = %q", out.Answer)
	}
	if out.Intent.Type != intent.TypeUnknown {
		t.Errorf("Intent.Type = %s", out.Intent.Type)
	}
}

// Secondary lookups are assumed consistent with the request record, so
// their failures are infrastructure errors, not apologies.
func TestAnswerSecondaryLookupFailurePropagates(t *testing.T) {
	tools := newMockTools()
	tools.failDriverLookup = true

	uc := newUseCase(tools, intent.Intent{Type: intent.TypePremiumByRequestID, RequestID: "34234"})
	if _, err := uc.Answer(context.Background(), "prima 34234"); err == nil {
		t.Error("expected error when a secondary lookup fails")
	}
}
