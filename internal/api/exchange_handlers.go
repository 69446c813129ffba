package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"qaboard/internal/bootstrap/logging"
	"qaboard/internal/errs"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// maxImportSize bounds uploaded workbooks to 20 MiB.
const maxImportSize = 20 << 20

func (s *Server) exportEntity(entity string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := s.exchange.Export(r.Context(), entity)
		if err != nil {
			writeError(w, r, err)
			return
		}
		defer f.Close()

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", entity+".xlsx"))
		if err := f.Write(w); err != nil {
			// Headers already went out; nothing left to do but log.
			logging.Error(r.Context(), "stream workbook", slog.Any("error", errs.Loggable(err)))
		}
	}
}

func (s *Server) importEntity(entity string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
		if err := r.ParseMultipartForm(maxImportSize); err != nil {
			writeBadRequest(w, "Arquivo inválido")
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			writeBadRequest(w, "O arquivo é obrigatório")
			return
		}
		defer file.Close()

		result, err := s.exchange.Import(r.Context(), entity, file)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
