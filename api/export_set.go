package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-yaml"
	"github.com/jackc/pgx/v5"

	"github.com/ag-eitilt/Pocket-Binder/carddef"
)

// exportSet renders a stored set back as a YAML document, in the same shape
// the definition reducers produce.
func (service *Service) exportSet(ctx *gin.Context) {
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

	def := carddef.Set{Code: set.Code, Name: set.Name}

	for _, c := range cards {
		card := carddef.Card{
			Code:     c.Code,
			Name:     c.Name,
			Type:     c.CardType,
			Cost:     c.Cost,
			Keywords: c.Keywords,
		}

		if c.RulesText.Valid {
			card.Text = c.RulesText.String
		}

		if len(c.Abilities) > 0 {
			if err := json.Unmarshal(c.Abilities, &card.Abilities); err != nil {
				ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
				return
			}
		}

		def.Cards = append(def.Cards, card)
	}

	out, err := yaml.Marshal(def)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.Data(http.StatusOK, "application/yaml", out)
}
