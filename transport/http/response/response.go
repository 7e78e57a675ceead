package response

import (
	"encoding/json"
	"net/http"

	"cruisedesk/shared/constant"
	"cruisedesk/shared/dto"
	"cruisedesk/shared/failure"
	"cruisedesk/shared/logger"
)

// Envelope is the body of every response: the upstream {success, message, data} shape, plus
// pagination on list responses.
type Envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       any             `json:"data"`
	Pagination *dto.Pagination `json:"pagination,omitempty"`
}

// Data documents a single item response.
type Data[T any] struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"OK"`
	Data    *T     `json:"data"`
}

// List documents a paginated response.
type List[T any] struct {
	Success    bool           `json:"success"    example:"true"`
	Message    string         `json:"message"    example:"OK"`
	Data       []T            `json:"data"`
	Pagination dto.Pagination `json:"pagination"`
}

// Error documents a failed response.
type Error struct {
	Success bool    `json:"success" example:"false"`
	Message string  `json:"message" example:"name is required"`
	Data    *string `json:"data"    swaggertype:"object"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Envelope{Success: isSuccess(code), Message: orStatusText(message, code)})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	WithData(writer, code, constant.ResponseMessageOK, jsonPayload)
}

// WithData sends a payload together with the upstream message.
func WithData(writer http.ResponseWriter, code int, message string, jsonPayload any) {
	response(writer, code, Envelope{Success: isSuccess(code), Message: orStatusText(message, code), Data: jsonPayload})
}

// WithList sends a page of items with its pagination.
func WithList(writer http.ResponseWriter, code int, message string, items any, pagination dto.Pagination) {
	response(writer, code, Envelope{
		Success:    isSuccess(code),
		Message:    orStatusText(message, code),
		Data:       items,
		Pagination: &pagination,
	})
}

// WithError sends a response with an error message
func WithError(writer http.ResponseWriter, err error) {
	WithErrorData(writer, err, nil)
}

// WithErrorData sends an error that still carries a payload, such as partial batch results.
func WithErrorData(writer http.ResponseWriter, err error, jsonPayload any) {
	code := failure.GetCode(err)

	response(writer, code, Envelope{Success: false, Message: orStatusText(err.Error(), code), Data: jsonPayload})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

func orStatusText(message string, code int) string {
	if message == "" {
		return http.StatusText(code)
	}

	return message
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		code = http.StatusInternalServerError
		response = []byte(`{"success":false,"message":"failed to encode response","data":null}`)
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
