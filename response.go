package opentdb

import "fmt"

// ResponseCode is the numeric status field carried by every API reply.
type ResponseCode struct {
	code    int
	meaning string
	isError bool
}

var (
	// ResponseUnknown is the fallback for codes this library does not know about.
	ResponseUnknown = ResponseCode{code: -1, meaning: "Unknown Response Code"}

	// ResponseSuccess means results were returned.
	ResponseSuccess = ResponseCode{code: 0, meaning: "Success"}

	// ResponseNoResults means the API does not have enough questions for the
	// query (e.g. asking for 50 questions in a category that only has 20).
	ResponseNoResults = ResponseCode{code: 1, meaning: "No Results", isError: true}

	// ResponseInvalidParameter should never happen unless the API changes.
	ResponseInvalidParameter = ResponseCode{code: 2, meaning: "Invalid Parameter", isError: true}

	// ResponseTokenNotFound most commonly means the server invalidated the
	// session token after 6 hours of inactivity.
	ResponseTokenNotFound = ResponseCode{code: 3, meaning: "Token Not Found", isError: true}

	// ResponseTokenEmpty means the token has returned all possible questions
	// for the query; resetting the token is necessary.
	ResponseTokenEmpty = ResponseCode{code: 4, meaning: "Token Empty", isError: true}
)

var responseCodes = []ResponseCode{
	ResponseSuccess,
	ResponseNoResults,
	ResponseInvalidParameter,
	ResponseTokenNotFound,
	ResponseTokenEmpty,
}

// ResponseCodeFromCode maps a numeric code to its ResponseCode.
// Unrecognized codes map to ResponseUnknown; this never fails.
func ResponseCodeFromCode(code int) ResponseCode {
	for _, rc := range responseCodes {
		if rc.code == code {
			return rc
		}
	}
	return ResponseUnknown
}

// Code returns the numeric code as sent by the API.
func (rc ResponseCode) Code() int { return rc.code }

// Meaning returns the human-readable meaning of the code.
func (rc ResponseCode) Meaning() string { return rc.meaning }

// IsError reports whether the code indicates a failed request.
func (rc ResponseCode) IsError() bool { return rc.isError }

func (rc ResponseCode) String() string {
	return fmt.Sprintf("%d: %s", rc.code, rc.meaning)
}
