package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"qaboard/internal/ports"
	"qaboard/internal/usecase/exchange"
)

func (s *Server) mountCatalogRoutes(r chi.Router) {
	r.Route("/services", func(r chi.Router) {
		r.Get("/", listHandler(s.catalog.ListServices, serviceToView))
		r.Get("/export", s.exportEntity(exchange.EntityServices))
		r.Post("/import", s.importEntity(exchange.EntityServices))
		r.Get("/{id}", getHandler(s.catalog.GetService, serviceToView))
		r.Post("/", createHandler(s.catalog.CreateService, serviceView.toPorts, serviceToView))
		r.Put("/", updateHandler(s.catalog.UpdateService, serviceView.toPorts, serviceToView))
		r.Delete("/", deleteHandler(s.catalog.DeleteService))
	})

	r.Route("/test-cases", func(r chi.Router) {
		r.Get("/", listHandler(s.catalog.ListTestCases, testCaseToView))
		r.Get("/export", s.exportEntity(exchange.EntityTestCases))
		r.Post("/import", s.importEntity(exchange.EntityTestCases))
		r.Get("/{id}", getHandler(s.catalog.GetTestCase, testCaseToView))
		r.Post("/", createHandler(s.catalog.CreateTestCase, testCaseView.toPorts, testCaseToView))
		r.Put("/", updateHandler(s.catalog.UpdateTestCase, testCaseView.toPorts, testCaseToView))
		r.Delete("/", deleteHandler(s.catalog.DeleteTestCase))
	})

	r.Route("/tests", func(r chi.Router) {
		r.Get("/", s.listTests)
		r.Get("/export", s.exportEntity(exchange.EntityTests))
		r.Post("/import", s.importEntity(exchange.EntityTests))
		r.Get("/{id}", getHandler(s.catalog.GetTest, testToView))
		r.Post("/", createHandler(s.catalog.CreateTest, testView.toPorts, testToView))
		r.Put("/", updateHandler(s.catalog.UpdateTest, testView.toPorts, testToView))
		r.Delete("/", deleteHandler(s.catalog.DeleteTest))
	})

	r.Route("/bugs", func(r chi.Router) {
		r.Get("/", s.listBugs)
		r.Get("/export", s.exportEntity(exchange.EntityBugs))
		r.Post("/import", s.importEntity(exchange.EntityBugs))
		r.Get("/{id}", getHandler(s.catalog.GetBug, bugToView))
		r.Post("/", createHandler(s.catalog.CreateBug, bugView.toPorts, bugToView))
		r.Put("/", updateHandler(s.catalog.UpdateBug, bugView.toPorts, bugToView))
		r.Delete("/", deleteHandler(s.catalog.DeleteBug))
	})

	r.Route("/improvements", func(r chi.Router) {
		r.Get("/", listHandler(s.catalog.ListImprovements, improvementToView))
		r.Get("/export", s.exportEntity(exchange.EntityImprovements))
		r.Post("/import", s.importEntity(exchange.EntityImprovements))
		r.Get("/{id}", getHandler(s.catalog.GetImprovement, improvementToView))
		r.Post("/", createHandler(s.catalog.CreateImprovement, improvementView.toPorts, improvementToView))
		r.Put("/", updateHandler(s.catalog.UpdateImprovement, improvementView.toPorts, improvementToView))
		r.Delete("/", deleteHandler(s.catalog.DeleteImprovement))
	})

	r.Route("/performance", func(r chi.Router) {
		r.Get("/", listHandler(s.catalog.ListPlans, planToView))
		r.Get("/export", s.exportEntity(exchange.EntityPerformance))
		r.Post("/import", s.importEntity(exchange.EntityPerformance))
		r.Get("/{id}", getHandler(s.catalog.GetPlan, planToView))
		r.Post("/", createHandler(s.catalog.CreatePlan, planView.toPorts, planToView))
		r.Put("/", updateHandler(s.catalog.UpdatePlan, planView.toPorts, planToView))
		r.Delete("/", deleteHandler(s.catalog.DeletePlan))
	})
}

func listHandler[E, V any](list func(context.Context) ([]E, error), toView func(E) V) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := list(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		views := make([]V, 0, len(rows))
		for _, row := range rows {
			views = append(views, toView(row))
		}
		writeJSON(w, http.StatusOK, views)
	}
}

func getHandler[E, V any](get func(context.Context, uint) (E, error), toView func(E) V) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idFromURL(w, r)
		if !ok {
			return
		}
		row, err := get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toView(row))
	}
}

func createHandler[V, E any](create func(context.Context, E) (E, error), toEntity func(V) E, toView func(E) V) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body V
		if err := decodeBody(r, &body); err != nil {
			writeBadRequest(w, "JSON inválido")
			return
		}
		created, err := create(r.Context(), toEntity(body))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toView(created))
	}
}

// updateHandler takes the record id in the JSON body, like the rest of
// the write surface.
func updateHandler[V, E any](update func(context.Context, E) (E, error), toEntity func(V) E, toView func(E) V) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body V
		if err := decodeBody(r, &body); err != nil {
			writeBadRequest(w, "JSON inválido")
			return
		}
		updated, err := update(r.Context(), toEntity(body))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toView(updated))
	}
}

func deleteHandler(del func(context.Context, uint) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID uint `json:"id"`
		}
		if err := decodeBody(r, &body); err != nil || body.ID == 0 {
			writeBadRequest(w, "O id é obrigatório")
			return
		}
		if err := del(r.Context(), body.ID); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
	}
}

func (s *Server) listTests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := ports.TestFilter{
		Query:  q.Get("q"),
		Type:   q.Get("type"),
		Result: q.Get("result"),
	}
	if raw := q.Get("service_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			writeBadRequest(w, "service_id inválido")
			return
		}
		filter.ServiceID = uint(id)
	}

	rows, err := s.catalog.ListTests(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	views := make([]testView, 0, len(rows))
	for _, row := range rows {
		views = append(views, testToView(row))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) listBugs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := ports.BugFilter{
		Query:       q.Get("q"),
		Status:      q.Get("status"),
		Criticality: q.Get("criticality"),
		Risk:        q.Get("risk"),
		Responsible: q.Get("responsible"),
	}

	var ok bool
	if filter.FoundFrom, ok = dateQueryParam(w, q.Get("found_from"), "found_from"); !ok {
		return
	}
	if filter.FoundTo, ok = dateQueryParam(w, q.Get("found_to"), "found_to"); !ok {
		return
	}

	rows, err := s.catalog.ListBugs(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	views := make([]bugView, 0, len(rows))
	for _, row := range rows {
		views = append(views, bugToView(row))
	}
	writeJSON(w, http.StatusOK, views)
}

func idFromURL(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		writeBadRequest(w, "id inválido")
		return 0, false
	}
	return uint(id), true
}

func dateQueryParam(w http.ResponseWriter, raw, name string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		writeBadRequest(w, name+" inválido")
		return nil, false
	}
	return &t, true
}
