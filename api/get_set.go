package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

func (service *Service) getSet(ctx *gin.Context) {
	code := ctx.Param("code")

	set, err := service.store.GetSetByCode(ctx, code)

	if errors.Is(err, pgx.ErrNoRows) {
		ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrSetNotFound))
		return
	}

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, set)
}

func (service *Service) listSetCards(ctx *gin.Context) {
	code := ctx.Param("code")

	set, err := service.store.GetSetByCode(ctx, code)

	if errors.Is(err, pgx.ErrNoRows) {
		ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrSetNotFound))
		return
	}

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	cards, err := service.store.ListCardsBySet(ctx, set.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, cards)
}
