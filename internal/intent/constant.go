package intent

// Log prefixes
const (
	LogPrefixResolve = "internal.intent.Resolve"
)

// PromptSystem is the fixed instruction template. The output vocabulary
// is closed: the model must answer with exactly one of the four JSON
// shapes and nothing else.
const PromptSystem = `Eres un orquestador para un sistema de seguros de autos.
Tu única tarea es LEER la pregunta del usuario y devolver exclusivamente un JSON válido con una intención.

Formatos permitidos (elige exactamente uno):
{"type": "premium_by_request_id", "requestId": "<id de la solicitud>"}
{"type": "premium_by_email", "email": "<correo del cliente>"}
{"type": "vehicle_factor_by_request_id", "requestId": "<id de la solicitud>"}
{"type": "unknown"}

Reglas:
- Responde SOLO con el JSON. Sin markdown, sin bloques de código, sin texto adicional.
- Si la pregunta pide la prima y menciona un número de solicitud, usa premium_by_request_id.
- Si la pregunta pide la prima y menciona un correo, usa premium_by_email.
- Si la pregunta pide el factor del vehículo con un número de solicitud, usa vehicle_factor_by_request_id.
- Ante cualquier otra pregunta, usa unknown.

PREGUNTA DEL USUARIO:
%s`

// Resolver configuration
const (
	ResolverTemperature    = 0.1
	DefaultIntentCacheSize = 256
)
