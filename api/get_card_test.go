package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	db "github.com/ag-eitilt/Pocket-Binder/db"
	mockdb "github.com/ag-eitilt/Pocket-Binder/db/mock"
	"github.com/ag-eitilt/Pocket-Binder/tmpstore"
	mocktmpstore "github.com/ag-eitilt/Pocket-Binder/tmpstore/mock"
)

func TestGetCard(t *testing.T) {
	card := db.Card{
		ID:    1,
		SetID: 1,
		Code:  "c1",
		Name:  "Goblin Raider",
		Cost:  2,
	}

	testCases := []struct {
		name          string
		id            string
		buildStubs    func(store *mockdb.MockStore, cache *mocktmpstore.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "InvalidParam",
			id:   "12s",
			buildStubs: func(store *mockdb.MockStore, cache *mocktmpstore.MockStore) {
				cache.EXPECT().GetCard(gomock.Any(), gomock.Any()).Times(0)
				store.EXPECT().GetCard(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "InvalidParamNegativeInt",
			id:   "-1",
			buildStubs: func(store *mockdb.MockStore, cache *mocktmpstore.MockStore) {
				cache.EXPECT().GetCard(gomock.Any(), gomock.Any()).Times(0)
				store.EXPECT().GetCard(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "CacheHit",
			id:   "1",
			buildStubs: func(store *mockdb.MockStore, cache *mocktmpstore.MockStore) {
				cache.EXPECT().GetCard(gomock.Any(), card.ID).Times(1).Return(&card, nil)
				store.EXPECT().GetCard(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got db.Card
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Equal(t, card, got)
			},
		},
		{
			name: "CacheMiss",
			id:   "1",
			buildStubs: func(store *mockdb.MockStore, cache *mocktmpstore.MockStore) {
				cache.EXPECT().GetCard(gomock.Any(), card.ID).Times(1).Return(nil, tmpstore.ErrCacheMiss)
				store.EXPECT().GetCard(gomock.Any(), card.ID).Times(1).Return(card, nil)
				cache.EXPECT().SaveCard(gomock.Any(), card, testConfig.CardCacheTTL).Times(1).Return(nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got db.Card
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Equal(t, card, got)
			},
		},
		{
			name: "CacheWriteFailureStillOK",
			id:   "1",
			buildStubs: func(store *mockdb.MockStore, cache *mocktmpstore.MockStore) {
				cache.EXPECT().GetCard(gomock.Any(), card.ID).Times(1).Return(nil, tmpstore.ErrCacheMiss)
				store.EXPECT().GetCard(gomock.Any(), card.ID).Times(1).Return(card, nil)
				cache.EXPECT().SaveCard(gomock.Any(), card, testConfig.CardCacheTTL).Times(1).Return(tmpstore.ErrCacheMiss)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "CardNotFound",
			id:   "1",
			buildStubs: func(store *mockdb.MockStore, cache *mocktmpstore.MockStore) {
				cache.EXPECT().GetCard(gomock.Any(), card.ID).Times(1).Return(nil, tmpstore.ErrCacheMiss)
				store.EXPECT().GetCard(gomock.Any(), card.ID).Times(1).Return(db.Card{}, pgx.ErrNoRows)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "GetCardErr",
			id:   "1",
			buildStubs: func(store *mockdb.MockStore, cache *mocktmpstore.MockStore) {
				cache.EXPECT().GetCard(gomock.Any(), card.ID).Times(1).Return(nil, tmpstore.ErrCacheMiss)
				store.EXPECT().GetCard(gomock.Any(), card.ID).Times(1).Return(db.Card{}, pgx.ErrTxClosed)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			cache := mocktmpstore.NewMockStore(ctrl)
			tc.buildStubs(store, cache)

			service := newTestService(t, store, cache)

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/cards/"+tc.id, nil)

			service.server.Handler.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
