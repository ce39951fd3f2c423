//go:build integration

package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/reservation-worker/internal/cache/memory"
	"github.com/Gunvolt24/reservation-worker/internal/domain"
	pgrepo "github.com/Gunvolt24/reservation-worker/internal/repo/postgres"
	"github.com/Gunvolt24/reservation-worker/internal/testutil"
	rest "github.com/Gunvolt24/reservation-worker/internal/transport/http"
	"github.com/Gunvolt24/reservation-worker/internal/usecase"
	"github.com/Gunvolt24/reservation-worker/internal/work"
	"github.com/Gunvolt24/reservation-worker/pkg/logger"
	"github.com/Gunvolt24/reservation-worker/pkg/validate"
)

// GET /messages/:id и /messages поверх настоящего журнала
func TestHTTP_Journal_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	defer func() { _ = stop(context.Background()) }()

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	journal := pgrepo.NewJournalRepository(pg.Pool)
	svc := usecase.NewMessageService("job1", work.Sleep(0, logg), validate.NewMessageValidator(true),
		cachemem.NewSeenCache(100, time.Minute), logg, usecase.WithJournal(journal))

	// seed: обрабатываем два сообщения через сервис
	first := testutil.MakeMessage("a")
	second := testutil.MakeMessage("b")
	require.NoError(t, svc.Process(ctx, &first))
	require.NoError(t, svc.Process(ctx, &second))

	ts := httptest.NewServer(rest.NewRouter(rest.NewHandler(svc, logg, 2*time.Second), ""))
	defer ts.Close()

	// 200
	resp, err := http.Get(ts.URL + "/messages/" + first.ID.String())
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got domain.ProcessedMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, first.ID.String(), got.MessageID)
	require.Equal(t, "a", got.Body)
	require.Equal(t, "job1", got.Queue)

	// 404
	resp404, err := http.Get(ts.URL + "/messages/missing-" + testutil.UniqSuffix())
	require.NoError(t, err)
	defer resp404.Body.Close()
	require.Equal(t, http.StatusNotFound, resp404.StatusCode)

	// список
	respList, err := http.Get(ts.URL + "/messages?limit=10")
	require.NoError(t, err)
	defer respList.Body.Close()
	require.Equal(t, http.StatusOK, respList.StatusCode)

	var list []domain.ProcessedMessage
	require.NoError(t, json.NewDecoder(respList.Body).Decode(&list))
	require.Len(t, list, 2)
}
