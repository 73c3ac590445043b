package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ag-eitilt/Pocket-Binder/carddef"
	db "github.com/ag-eitilt/Pocket-Binder/db"
)

// maxImportBytes caps the request body of one definitions upload.
const maxImportBytes = 8 << 20

type ImportedSet struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Cards int    `json:"cards"`
}

type ImportSetsResponse struct {
	ImportID uuid.UUID     `json:"import_id"`
	Sets     []ImportedSet `json:"sets"`
}

// importSets streams one XML definitions document out of the request body
// and persists every set it reduces. The document never lands in memory as a
// tree; the body reader feeds the walker directly.
func (service *Service) importSets(ctx *gin.Context) {
	body := http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxImportBytes)

	sets, err := carddef.ParseSets(body)
	if err != nil {
		// anything the reducers reject is the client's problem, not ours
		errField := ErrorField{"body", err.Error()}
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrImportRejected, errField))
		return
	}

	importID := uuid.New()
	resp := ImportSetsResponse{ImportID: importID}

	for _, set := range sets {
		result, err := service.store.ImportSetTx(ctx, db.ImportSetTxParams{
			Set:      set,
			ImportID: importID,
		})
		if err != nil {
			log.Error().Err(err).Str("set", set.Code).Msg("failed to import set")
			ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
			return
		}

		// stale cache entries for replaced cards expire on their own TTL

		resp.Sets = append(resp.Sets, ImportedSet{
			Code:  result.Set.Code,
			Name:  result.Set.Name,
			Cards: len(result.Cards),
		})
	}

	ctx.JSON(http.StatusOK, resp)
}
