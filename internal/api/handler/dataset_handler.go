package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"suicide-analytics-service/internal/engine"
	"suicide-analytics-service/internal/model"
	"suicide-analytics-service/internal/session"
	"suicide-analytics-service/internal/store"
	"suicide-analytics-service/pkg/router"
)

// DatasetHandler wires the HTTP surface to the session manager and the
// aggregation engine.
type DatasetHandler struct {
	Sessions  *session.Manager
	Mapping   engine.ColumnMapping
	MaxUpload int64
}

func NewDatasetHandler(sessions *session.Manager, mapping engine.ColumnMapping, maxUpload int64) *DatasetHandler {
	return &DatasetHandler{Sessions: sessions, Mapping: mapping, MaxUpload: maxUpload}
}

// UploadDataset creates a dataset session from an uploaded CSV
// @Summary Upload a dataset
// @Description Parse a CSV file into a new in-memory dataset session
// @Tags datasets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param name formData string false "Display name"
// @Success 201 {object} map[string]interface{} "Dataset created"
// @Failure 400 {object} map[string]interface{} "Invalid upload or data format"
// @Router /datasets [post]
func (h *DatasetHandler) UploadDataset(w http.ResponseWriter, r *http.Request) {
	res, name, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	s := h.Sessions.Create(name, res)
	if err := store.SaveUpload(s.ID, s.Name, s.Dataset.Len(), res.Skipped(), res.Rollups, res.Warnings); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to register upload")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":       s.ID,
		"name":     s.Name,
		"rows":     s.Dataset.Len(),
		"skipped":  res.Skipped(),
		"rollups":  res.Rollups,
		"warnings": len(res.Warnings),
	})
}

// ReplaceDataset swaps a session's dataset for a newly uploaded CSV
// @Summary Replace a dataset
// @Description Replace the session's dataset wholesale; the previous dataset stays active if the new file is rejected
// @Tags datasets
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Dataset ID"
// @Param file formData file true "CSV file"
// @Success 200 {object} map[string]interface{} "Dataset replaced"
// @Failure 400 {object} map[string]interface{} "Invalid upload or data format"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id} [put]
func (h *DatasetHandler) ReplaceDataset(w http.ResponseWriter, r *http.Request) {
	id := router.PathSegment(r, 3)
	if _, err := h.Sessions.Get(id); err != nil {
		writeError(w, http.StatusNotFound, "dataset not found")
		return
	}

	// Parse before touching the session: a DataFormatError must leave the
	// previous dataset untouched.
	res, name, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	s, err := h.Sessions.Replace(id, name, res)
	if err != nil {
		writeError(w, http.StatusNotFound, "dataset not found")
		return
	}
	if err := store.ReplaceUpload(s.ID, s.Name, s.Dataset.Len(), res.Skipped(), res.Rollups, res.Warnings); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update upload registry")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":       s.ID,
		"name":     s.Name,
		"rows":     s.Dataset.Len(),
		"skipped":  res.Skipped(),
		"rollups":  res.Rollups,
		"warnings": len(res.Warnings),
	})
}

// readUpload pulls the CSV out of the multipart form and loads it. On failure
// it writes the error response and returns ok=false.
func (h *DatasetHandler) readUpload(w http.ResponseWriter, r *http.Request) (*engine.LoadResult, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUpload)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "multipart field 'file' is required")
		return nil, "", false
	}
	defer file.Close()

	res, err := engine.Load(file, h.Mapping)
	if err != nil {
		var dfe *engine.DataFormatError
		if errors.As(err, &dfe) {
			writeError(w, http.StatusBadRequest, dfe.Error())
		} else {
			writeError(w, http.StatusInternalServerError, "failed to read upload")
		}
		return nil, "", false
	}

	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}
	return res, name, true
}

// ListDatasets lists the upload registry
// @Summary List datasets
// @Tags datasets
// @Produce json
// @Success 200 {object} map[string]interface{} "Uploads"
// @Router /datasets [get]
func (h *DatasetHandler) ListDatasets(w http.ResponseWriter, r *http.Request) {
	uploads, err := store.ListUploads()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list uploads")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"uploads": uploads,
		"count":   len(uploads),
	})
}

// GetDataset returns dimension metadata for building filter widgets
// @Summary Get dataset metadata
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{} "Dataset metadata"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id} [get]
func (h *DatasetHandler) GetDataset(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	yearMin, yearMax, _ := s.Dataset.YearRange()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":          s.ID,
		"name":        s.Name,
		"rows":        s.Dataset.Len(),
		"total_cases": s.Dataset.TotalCount(),
		"states":      sorted(s.Dataset.States()),
		"year_min":    yearMin,
		"year_max":    yearMax,
		"genders":     sorted(s.Dataset.Genders()),
		"age_groups":  sorted(s.Dataset.AgeGroups()),
		"categories":  sorted(s.Dataset.Categories()),
		"created_at":  s.CreatedAt,
		"updated_at":  s.UpdatedAt,
	})
}

// GetSummary filters and aggregates a dataset
// @Summary Query a summary table
// @Description Apply the filter criteria, group by the requested dimensions and aggregate
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Param group_by query string false "Comma-separated dimensions (state, year, gender, age_group, category)" default(state)
// @Param fn query string false "Aggregate function: sum or count" default(sum)
// @Param states query string false "Comma-separated state filter"
// @Param genders query string false "Comma-separated gender filter"
// @Param age_groups query string false "Comma-separated age group filter"
// @Param categories query string false "Comma-separated category filter"
// @Param year_from query int false "Lower year bound (inclusive)"
// @Param year_to query int false "Upper year bound (inclusive)"
// @Param dense query bool false "Zero-fill missing years when grouping by year"
// @Success 200 {object} map[string]interface{} "Summary table, possibly empty"
// @Failure 400 {object} map[string]interface{} "Invalid query"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id}/summary [get]
func (h *DatasetHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	criteria, err := parseCriteria(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	req := parseAggregationRequest(r)

	filtered := engine.Filter(s.Dataset, criteria)
	table, err := engine.Aggregate(filtered, req)
	if errors.Is(err, engine.ErrEmptyResult) {
		// Recoverable: the UI renders a placeholder, not an error.
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"group_by": req.GroupBy,
			"fn":       req.Fn,
			"rows":     []model.SummaryRow{},
			"total":    0,
			"message":  engine.ErrEmptyResult.Error(),
		})
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"group_by": table.GroupBy,
		"fn":       table.Fn,
		"rows":     table.Rows,
		"total":    table.Total(),
	})
}

// GetStatistics returns the key statistics strip
// @Summary Key statistics
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} engine.KeyStatistics "Key statistics"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id}/stats [get]
func (h *DatasetHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	criteria, err := parseCriteria(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	stats, err := engine.Statistics(engine.Filter(s.Dataset, criteria))
	if errors.Is(err, engine.ErrEmptyResult) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message": engine.ErrEmptyResult.Error(),
		})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute statistics")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GetMapTotals returns choropleth-ready state totals
// @Summary State totals for the map layer
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{} "State totals with geo names"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id}/map [get]
func (h *DatasetHandler) GetMapTotals(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	criteria, err := parseCriteria(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	points, err := engine.MapTotals(engine.Filter(s.Dataset, criteria))
	if errors.Is(err, engine.ErrEmptyResult) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"points":  []engine.MapPoint{},
			"message": engine.ErrEmptyResult.Error(),
		})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute map totals")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"points": points,
		"count":  len(points),
	})
}

// GetWarnings returns the skipped-row report for an upload
// @Summary Skipped-row report
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{} "Row warnings"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id}/warnings [get]
func (h *DatasetHandler) GetWarnings(w http.ResponseWriter, r *http.Request) {
	id := router.PathSegment(r, 3)
	if _, err := store.GetUpload(id); err != nil {
		writeError(w, http.StatusNotFound, "dataset not found")
		return
	}
	warnings, err := store.GetUploadWarnings(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load warnings")
		return
	}
	if warnings == nil {
		warnings = []engine.RowWarning{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":       id,
		"warnings": warnings,
		"count":    len(warnings),
	})
}

// ExportDataset streams the filtered dataset (or a summary table) as CSV
// @Summary Export filtered data as CSV
// @Tags datasets
// @Produce text/csv
// @Param id path string true "Dataset ID"
// @Param content query string false "records (default) or summary"
// @Success 200 {file} file "CSV download"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id}/export [get]
func (h *DatasetHandler) ExportDataset(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	criteria, err := parseCriteria(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	filtered := engine.Filter(s.Dataset, criteria)

	if r.URL.Query().Get("content") == "summary" {
		req := parseAggregationRequest(r)
		table, err := engine.Aggregate(filtered, req)
		if err != nil {
			if errors.Is(err, engine.ErrEmptyResult) {
				table = &model.SummaryTable{GroupBy: req.GroupBy, Fn: req.Fn}
			} else {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
		}
		w.Header().Set("Content-Disposition", `attachment; filename="summary.csv"`)
		w.Header().Set("Content-Type", "text/csv")
		if err := engine.WriteSummaryCSV(w, table); err != nil {
			fmt.Printf("❌ Summary export failed for %s: %v\n", s.ID, err)
		}
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="filtered_data.csv"`)
	w.Header().Set("Content-Type", "text/csv")
	if err := engine.WriteDatasetCSV(w, filtered); err != nil {
		fmt.Printf("❌ Dataset export failed for %s: %v\n", s.ID, err)
	}
}

// DeleteDataset drops a session and its registry row
// @Summary Delete a dataset
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID"
// @Success 200 {object} map[string]interface{} "Dataset deleted"
// @Failure 404 {object} map[string]interface{} "Dataset not found"
// @Router /datasets/{id} [delete]
func (h *DatasetHandler) DeleteDataset(w http.ResponseWriter, r *http.Request) {
	id := router.PathSegment(r, 3)
	if err := h.Sessions.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, "dataset not found")
		return
	}
	// The registry row stays around as history; only its status flips.
	if err := store.UpdateUploadStatus(id, "deleted"); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update upload registry")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "dataset deleted",
		"id":      id,
	})
}

// session resolves the {id} path segment to a live session, writing the 404
// itself when it is gone.
func (h *DatasetHandler) session(w http.ResponseWriter, r *http.Request) (session.Session, bool) {
	id := router.PathSegment(r, 3)
	s, err := h.Sessions.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "dataset not found")
		return session.Session{}, false
	}
	return s, true
}

// ------------------- Query parsing -------------------

func parseCriteria(r *http.Request) (model.FilterCriteria, error) {
	q := r.URL.Query()
	var c model.FilterCriteria

	c.States = splitParam(q.Get("states"))
	c.Category = splitParam(q.Get("categories"))

	if raw := splitParam(q.Get("genders")); raw != nil {
		genders := make([]model.Gender, 0, len(raw))
		for _, g := range raw {
			gender, err := model.ParseGenderValue(g)
			if err != nil {
				return c, err
			}
			genders = append(genders, gender)
		}
		c.Genders = genders
	}
	if raw := splitParam(q.Get("age_groups")); raw != nil {
		groups := make([]model.AgeGroup, 0, len(raw))
		for _, ag := range raw {
			group, err := model.ParseAgeGroupValue(ag)
			if err != nil {
				return c, err
			}
			groups = append(groups, group)
		}
		c.AgeGroups = groups
	}

	fromStr, toStr := q.Get("year_from"), q.Get("year_to")
	if fromStr != "" || toStr != "" {
		yr := model.YearRange{Min: 0, Max: 999999}
		if fromStr != "" {
			from, err := strconv.Atoi(fromStr)
			if err != nil {
				return c, fmt.Errorf("invalid year_from %q", fromStr)
			}
			yr.Min = from
		}
		if toStr != "" {
			to, err := strconv.Atoi(toStr)
			if err != nil {
				return c, fmt.Errorf("invalid year_to %q", toStr)
			}
			yr.Max = to
		}
		c.Years = &yr
	}
	return c, nil
}

func parseAggregationRequest(r *http.Request) model.AggregationRequest {
	q := r.URL.Query()
	req := model.AggregationRequest{
		GroupBy: []model.Dimension{model.DimensionState},
		Fn:      model.AggregateSum,
	}
	if raw := splitParam(q.Get("group_by")); raw != nil {
		req.GroupBy = make([]model.Dimension, 0, len(raw))
		for _, d := range raw {
			req.GroupBy = append(req.GroupBy, model.Dimension(strings.ToLower(d)))
		}
	}
	if fn := q.Get("fn"); fn != "" {
		req.Fn = model.AggregateFunc(strings.ToLower(fn))
	}
	if dense := q.Get("dense"); dense == "true" || dense == "1" {
		req.Dense = true
	}
	return req
}

// sorted copies the values ascending; filter widgets want stable option lists.
func sorted(values []string) []string {
	out := append([]string(nil), values...)
	sort.Strings(out)
	return out
}

// splitParam splits a comma-separated query value; an absent value yields nil
// (no constraint).
func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ------------------- Responses -------------------

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"error": message})
}
