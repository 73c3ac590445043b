package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

func (service *Service) getCard(ctx *gin.Context) {
	cardID := ctx.MustGet(cardIDKey).(int64)

	// serve from cache when we can
	if card, err := service.cache.GetCard(ctx, cardID); err == nil {
		ctx.JSON(http.StatusOK, card)
		return
	}

	card, err := service.store.GetCard(ctx, cardID)

	if errors.Is(err, pgx.ErrNoRows) {
		ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrCardNotFound))
		return
	}

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	// a failed cache write only costs the next reader a db trip
	_ = service.cache.SaveCard(ctx, card, service.config.CardCacheTTL)

	ctx.JSON(http.StatusOK, card)
}
