package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const cardIDKey = "provided_card_id"

func (service *Service) cardIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// getting mandatory card id from the request, abort with 400 on error
		cardIDRaw := ctx.Param("id")

		cardID, err := strconv.ParseInt(cardIDRaw, 10, 64)
		if err != nil || cardID < 1 {
			errField := ErrorField{"id", fmt.Sprintf("Invalid card id: %s", cardIDRaw)}
			ctx.AbortWithStatusJSON(
				http.StatusBadRequest,
				NewErrorResponse(ErrInvalidCardID, errField),
			)
			return
		}

		ctx.Set(cardIDKey, cardID)
		ctx.Next()
	}
}
