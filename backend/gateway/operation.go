package gateway

import "fmt"

type Operation int

const (
	Chat Operation = iota + 1
	Translate
	DraftEmail
)

const chatSystemInstruction = "You are a helpful, encouraging AI assistant for a Sri Lankan factory owner. " +
	"You speak primarily in Sinhala, but can use English terms where appropriate for business context. " +
	"Keep answers practical, simple, and related to manufacturing, business, or the specific 100-day training plan."

// variant is everything that differs between the three operations.
type variant struct {
	name          string
	path          string
	requestField  string
	responseField string
	// Only chat gets a system instruction; the other two carry their
	// instructions inside the prompt.
	systemInstruction string
	prompt            func(payload string) string
	// emptyFallback is shown when the model answers with no text,
	// failureMessage when the call itself fails.
	emptyFallback  string
	failureMessage string
}

var variants = map[Operation]variant{
	Chat: {
		name:              "chat",
		path:              "/api/chat",
		requestField:      "message",
		responseField:     "response",
		systemInstruction: chatSystemInstruction,
		prompt:            func(payload string) string { return payload },
		emptyFallback:     "ක්ෂමාවන්න, මට පිළිතුරක් ලබා දීමට නොහැකි විය.",
		failureMessage:    "දෝෂයක් සිදුවිය. කරුණාකර ඔබගේ අන්තර්ජාල සම්බන්ධතාවය පරීක්ෂා කරන්න.",
	},
	Translate: {
		name:          "translate",
		path:          "/api/translate",
		requestField:  "text",
		responseField: "translation",
		prompt: func(payload string) string {
			return "Translate the following business text into professional but easy-to-understand Sinhala:\n\n" + payload
		},
		emptyFallback:  "පරිවර්තනය අසාර්ථක විය.",
		failureMessage: "පරිවර්තනය කිරීමේදී දෝෂයක් සිදුවිය.",
	},
	DraftEmail: {
		name:          "email",
		path:          "/api/email",
		requestField:  "details",
		responseField: "email",
		prompt: func(payload string) string {
			return "Write a professional business email in English based on these details " +
				"(provided in Sinhala/English): \"" + payload + "\". Also provide a Sinhala summary of what the email says below it."
		},
		emptyFallback:  "ලිපිය සැකසීම අසාර්ථක විය.",
		failureMessage: "ලිපිය සැකසීමේදී දෝෂයක් සිදුවිය.",
	},
}

// Operations lists the supported operations in a stable order.
func Operations() []Operation {
	return []Operation{Chat, Translate, DraftEmail}
}

func (op Operation) Valid() bool {
	_, ok := variants[op]
	return ok
}

func (op Operation) String() string {
	if v, ok := variants[op]; ok {
		return v.name
	}
	return fmt.Sprintf("operation(%d)", int(op))
}

// Path is the HTTP route serving the operation.
func (op Operation) Path() string { return variants[op].path }

// RequestField is the JSON key holding the payload in the request body.
func (op Operation) RequestField() string { return variants[op].requestField }

// ResponseField is the JSON key holding the text in a successful response.
func (op Operation) ResponseField() string { return variants[op].responseField }
