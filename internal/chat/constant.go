package chat

// User-facing answer strings. Lookup apologies deliberately stay generic
// so internal lookup mechanics never leak; business rejections come from
// the rating package and are returned verbatim.
const (
	MsgNoRequestByID    = "Lo siento, no existe una solicitud con ese identificador en nuestro sistema."
	MsgNoRequestByEmail = "Lo siento, no existe una solicitud con ese correo en nuestro sistema."
	MsgUnknownIntent    = "Por ahora solo entiendo preguntas sobre prima o factor del vehículo indicando número de solicitud o correo."

	// FmtPremiumAnswer takes rawPremium (2 decimals) and the rounded premium.
	FmtPremiumAnswer = "La prima estimada de esta solicitud es de %.2f smartcars (redondeada a %d smartcars)."

	// FmtVehicleFactorAnswer takes the request id and the factor (4 decimals).
	FmtVehicleFactorAnswer = "El factor del vehículo para la solicitud %s es %.4f."
)
