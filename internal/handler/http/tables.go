// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/internal/utils"
	"github.com/MKhiriev/site-sync/models"
)

type rowsResponse struct {
	Table models.Table `json:"table"`
	Rows  []models.Row `json:"rows"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

// tableFromRequest returns the {table} URL parameter. The settings table is
// never exposed here.
func (h *Handler) tableFromRequest(r *http.Request) (models.Table, error) {
	table := models.Table(chi.URLParam(r, "table"))
	if table == models.TableSettings || !h.localStore.HasTable(table) {
		return "", fmt.Errorf("%w: %s", store.ErrUnknownTable, table)
	}
	return table, nil
}

func idFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id must be an integer", store.ErrInvalidRow)
	}
	return id, nil
}

func decodeRow(r *http.Request) (models.Row, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var row models.Row
	if err := dec.Decode(&row); err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidRow, err)
	}
	if len(row) == 0 {
		return nil, fmt.Errorf("%w: empty row", store.ErrInvalidRow)
	}
	return row, nil
}

func (h *Handler) listRows(w http.ResponseWriter, r *http.Request) {
	table, err := h.tableFromRequest(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.listRows", err)
		return
	}

	rows, err := h.localStore.ReadAll(r.Context(), table)
	if err != nil {
		writeServiceError(w, r, "*Handler.listRows", err)
		return
	}
	if rows == nil {
		rows = []models.Row{}
	}

	utils.WriteJSON(w, rowsResponse{Table: table, Rows: encodeRows(rows)}, http.StatusOK)
}

func (h *Handler) createRow(w http.ResponseWriter, r *http.Request) {
	table, err := h.tableFromRequest(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.createRow", err)
		return
	}
	row, err := decodeRow(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.createRow", err)
		return
	}

	// The commit runs on a detached context: a client disconnecting after
	// the request was accepted must not roll the write back.
	ctx := context.WithoutCancel(r.Context())

	var id int64
	err = h.localStore.Mutate(ctx, func(tx store.MutationTx) error {
		id, err = tx.Insert(ctx, table, row)
		return err
	})
	if err != nil {
		writeServiceError(w, r, "*Handler.createRow", err)
		return
	}

	logger.FromRequest(r).Info().
		Str("func", "*Handler.createRow").
		Str("table", table.String()).
		Int64("id", id).
		Msg("row created")

	utils.WriteJSON(w, idResponse{ID: id}, http.StatusCreated)
}

func (h *Handler) updateRow(w http.ResponseWriter, r *http.Request) {
	table, err := h.tableFromRequest(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateRow", err)
		return
	}
	id, err := idFromRequest(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateRow", err)
		return
	}
	row, err := decodeRow(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateRow", err)
		return
	}

	ctx := context.WithoutCancel(r.Context())
	err = h.localStore.Mutate(ctx, func(tx store.MutationTx) error {
		return tx.Update(ctx, table, id, row)
	})
	if err != nil {
		writeServiceError(w, r, "*Handler.updateRow", err)
		return
	}

	utils.WriteJSON(w, idResponse{ID: id}, http.StatusOK)
}

func (h *Handler) deleteRow(w http.ResponseWriter, r *http.Request) {
	table, err := h.tableFromRequest(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteRow", err)
		return
	}
	id, err := idFromRequest(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteRow", err)
		return
	}

	ctx := context.WithoutCancel(r.Context())
	err = h.localStore.Mutate(ctx, func(tx store.MutationTx) error {
		return tx.Delete(ctx, table, id)
	})
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteRow", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// encodeRows turns BLOB values into strings so they render as text rather
// than base64.
func encodeRows(rows []models.Row) []models.Row {
	for _, row := range rows {
		for k, v := range row {
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}
	}
	return rows
}
