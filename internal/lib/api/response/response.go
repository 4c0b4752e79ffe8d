package response

// Response is the envelope shared by every JSON reply that is not a bare
// booking or booking list. Empty members are omitted so each reply carries
// only the key its status implies.
type Response struct {
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

const (
	MsgInvalidJSON   = "Invalid JSON body. Check syntax."
	MsgInvalidID     = "Invalid id"
	MsgNotFound      = "Booking not found"
	MsgTooLarge      = "request entity too large"
	MsgRouteNotFound = "route not found"
	MsgNotAllowed    = "method not allowed"
)

func Message(msg string) Response {
	return Response{
		Message: msg,
	}
}

func Error(msg string) Response {
	return Response{
		Error: msg,
	}
}

// ValidationError carries the complete list of rule violations found in a
// payload, in the order they were detected.
func ValidationError(errs []string) Response {
	list := make([]string, len(errs))
	copy(list, errs)

	return Response{
		Errors: list,
	}
}
