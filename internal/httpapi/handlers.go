package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/sells-group/contact-sanitize/internal/contact"
	"github.com/sells-group/contact-sanitize/pkg/sanitize"
)

func (s *Server) sanitizeContacts(w http.ResponseWriter, r *http.Request) {
	var req SanitizeRequest
	if !decode(w, r, &req) {
		return
	}

	rule := "required,min=1,max=" + strconv.Itoa(s.cfg.MaxBatch)
	if err := s.validate.Var(req.Contacts, rule); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "invalid_request", "request failed validation",
			translate("contacts", err)...)
		return
	}

	results := make([]contact.Result, len(req.Contacts))
	out := make([]ContactOutput, len(req.Contacts))
	for i, in := range req.Contacts {
		results[i] = contact.Clean(in.Contact(), s.opts)
		out[i] = newOutput(results[i])
	}

	writeJSON(w, http.StatusOK, SanitizeResponse{
		Results: out,
		Summary: contact.Summarize(results),
	})
}

func (s *Server) sanitizeField(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "field")
	fn, ok := sanitize.Lookup(name)
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown_field", "unknown field "+strconv.Quote(name))
		return
	}

	var req FieldRequest
	if !decode(w, r, &req) {
		return
	}

	v, valid := fn(value(req.Value))
	field, _ := sanitize.ParseField(name)
	resp := FieldResponse{
		Field: string(field),
		// Names fall back to Unknown rather than null.
		Value: fromOK(v, valid || v != ""),
		Valid: valid,
	}
	if format, ok := sanitize.LookupFormatter(name); ok && valid {
		resp.Formatted = fromOK(format(v))
	}

	writeJSON(w, http.StatusOK, resp)
}

// decode reads a JSON body into dst, writing a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_body", "invalid request body: "+err.Error())
		return false
	}
	return true
}

// translate turns validator errors into request error details.
func translate(field string, err error) []ErrorDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ErrorDetail{{Field: field, Message: err.Error()}}
	}
	details := make([]ErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		msg := "failed " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		details = append(details, ErrorDetail{Field: field, Message: msg})
	}
	return details
}
