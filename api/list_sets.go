package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	db "github.com/ag-eitilt/Pocket-Binder/db"
)

type ListSetsRequest struct {
	Limit  int32 `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int32 `form:"offset,default=0" binding:"min=0"`
}

func (service *Service) listSets(ctx *gin.Context) {
	var req ListSetsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams))
		return
	}

	sets, err := service.store.ListSets(ctx, db.ListSetsParams{
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, sets)
}
