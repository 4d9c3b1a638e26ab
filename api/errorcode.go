package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unheard-app/unheard-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid email or password",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "this account has been registered or has been taken",
		1101: "account not found",

		1200: store.ErrRequestNotExist.Error(),
		1201: store.ErrRequestNotOpen.Error(),
		1202: store.ErrOfferNotExist.Error(),
		1203: store.ErrOfferNotPending.Error(),
		1204: store.ErrOfferRequestMismatch.Error(),
		1205: store.ErrNotRequestOwner.Error(),
		1206: store.ErrOfferOwnRequest.Error(),
		1207: store.ErrEmptyDescription.Error(),
		1208: store.ErrRequestNotMatched.Error(),

		1300: store.ErrSessionNotExist.Error(),
		1301: store.ErrNotParticipant.Error(),
		1302: store.ErrSessionNotActive.Error(),
		1303: store.ErrEmptyMessage.Error(),

		1400: store.ErrArticleNotExist.Error(),
		1401: store.ErrLessonNotExist.Error(),

		1500: "unexpected assistant response",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidCredentials         = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)

	errorRequestNotExist      = errorJSON(1200)
	errorRequestNotOpen       = errorJSON(1201)
	errorOfferNotExist        = errorJSON(1202)
	errorOfferNotPending      = errorJSON(1203)
	errorOfferRequestMismatch = errorJSON(1204)
	errorNotRequestOwner      = errorJSON(1205)
	errorOfferOwnRequest      = errorJSON(1206)
	errorEmptyDescription     = errorJSON(1207)
	errorRequestNotMatched    = errorJSON(1208)

	errorSessionNotExist  = errorJSON(1300)
	errorNotParticipant   = errorJSON(1301)
	errorSessionNotActive = errorJSON(1302)
	errorEmptyMessage     = errorJSON(1303)

	errorArticleNotExist = errorJSON(1400)
	errorLessonNotExist  = errorJSON(1401)

	errorAssistantResponse = errorJSON(1500)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// abortWithStoreError maps a matching workflow error to its HTTP status:
// stale statuses are conflicts the caller may retry after a re-read,
// permission problems are forbidden, and missing fields are bad requests.
func abortWithStoreError(c *gin.Context, err error) {
	switch err {
	case store.ErrRequestNotExist:
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist, err)
	case store.ErrOfferNotExist:
		abortWithEncoding(c, http.StatusNotFound, errorOfferNotExist, err)
	case store.ErrSessionNotExist:
		abortWithEncoding(c, http.StatusNotFound, errorSessionNotExist, err)
	case store.ErrArticleNotExist:
		abortWithEncoding(c, http.StatusNotFound, errorArticleNotExist, err)
	case store.ErrLessonNotExist:
		abortWithEncoding(c, http.StatusNotFound, errorLessonNotExist, err)
	case store.ErrRequestNotOpen:
		abortWithEncoding(c, http.StatusConflict, errorRequestNotOpen, err)
	case store.ErrOfferNotPending:
		abortWithEncoding(c, http.StatusConflict, errorOfferNotPending, err)
	case store.ErrSessionNotActive:
		abortWithEncoding(c, http.StatusConflict, errorSessionNotActive, err)
	case store.ErrRequestNotMatched:
		abortWithEncoding(c, http.StatusConflict, errorRequestNotMatched, err)
	case store.ErrNotRequestOwner:
		abortWithEncoding(c, http.StatusForbidden, errorNotRequestOwner, err)
	case store.ErrNotParticipant:
		abortWithEncoding(c, http.StatusForbidden, errorNotParticipant, err)
	case store.ErrOfferOwnRequest:
		abortWithEncoding(c, http.StatusForbidden, errorOfferOwnRequest, err)
	case store.ErrOfferRequestMismatch:
		abortWithEncoding(c, http.StatusBadRequest, errorOfferRequestMismatch, err)
	case store.ErrEmptyDescription:
		abortWithEncoding(c, http.StatusBadRequest, errorEmptyDescription, err)
	case store.ErrEmptyMessage:
		abortWithEncoding(c, http.StatusBadRequest, errorEmptyMessage, err)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}
