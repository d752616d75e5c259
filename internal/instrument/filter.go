package instrument

import "net/http"

// Response is what the instrumentation knows about a finished response.
type Response struct {
	Status int
	// Raw is set when the handler took over the connection. Status is then
	// only a placeholder.
	Raw bool
}

// Filter decides whether a response is measured. It returns the response to
// derive labels from and false to skip the measurement. It never changes what
// is sent to the client.
type Filter func(Response) (Response, bool)

// KeepAll measures every response as is.
func KeepAll(resp Response) (Response, bool) {
	return resp, true
}

// IgnoreRaw skips responses of hijacked connections and keeps the rest unchanged.
func IgnoreRaw(resp Response) (Response, bool) {
	if resp.Raw {
		return resp, false
	}
	return resp, true
}

func statusOrOK(status int) int {
	// No Write or WriteHeader means net/http sends 200.
	if status == 0 {
		return http.StatusOK
	}
	return status
}
