package trajectory

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"beneficiary-trajectory/internal/domain/actors"
	"beneficiary-trajectory/internal/domain/attendance"
	"beneficiary-trajectory/internal/domain/beneficiaries"
	"beneficiary-trajectory/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, asm *Assembler, gw *Gateway, benSvc *beneficiaries.Service) {
	r.Route("/beneficiaries/{beneficiaryID}", func(br chi.Router) {
		br.Use(middleware.RequireClaims)

		br.Get("/trajectory", getTrajectoryHandler(asm, benSvc))
		br.Post("/notes", appendNoteHandler(gw, benSvc))
	})
}

// appendNoteRequest es el cuerpo para registrar una observación nueva.
type appendNoteRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// entryResponse es un ítem de la trayectoria. Trae `attendance` o `note` según `kind`.
type entryResponse struct {
	ID           string                    `json:"id"`
	Kind         Kind                      `json:"kind" enums:"attendance,note"`
	Instant      time.Time                 `json:"instant"`
	DateUnparsed bool                      `json:"date_unparsed,omitempty"`
	Title        string                    `json:"title"`
	Description  string                    `json:"description"`
	Remark       string                    `json:"remark"`
	Attendance   *attendanceDetailResponse `json:"attendance,omitempty"`
	Note         *noteDetailResponse       `json:"note,omitempty"`
}

type attendanceDetailResponse struct {
	Status      attendance.Status `json:"status" enums:"present,absent"`
	SpaceName   string            `json:"space_name"`
	Responsible string            `json:"responsible"`
}

type noteDetailResponse struct {
	AuthorName string `json:"author_name"`
	AuthorRole string `json:"author_role"`
}

// noteResponse es la observación tal como quedó persistida.
type noteResponse struct {
	ID            string `json:"id"`
	BeneficiaryID string `json:"beneficiary_id"`
	AuthorID      string `json:"author_id"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

// appendNoteResponse devuelve la nota creada y la trayectoria recalculada.
// Si la recarga falló, timeline viene vacío y timeline_stale=true.
type appendNoteResponse struct {
	Note          noteResponse    `json:"note"`
	Timeline      []entryResponse `json:"timeline"`
	TimelineStale bool            `json:"timeline_stale,omitempty"`
}

// getTrajectoryHandler godoc
// @Summary Trayectoria de un beneficiario
// @Description Devuelve asistencias a actividades y observaciones del beneficiario en un único orden cronológico, de la más reciente a la más antigua. Una lista vacía es un resultado válido. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags trajectory
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param beneficiaryID path string true "ID del beneficiario"
// @Param kind query string false "Filtra por tipo de entrada" Enums(attendance, note)
// @Success 200 {array} entryResponse
// @Failure 400 {string} string "kind inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "beneficiary not found"
// @Failure 502 {string} string "trajectory unavailable"
// @Router /beneficiaries/{beneficiaryID}/trajectory [get]
func getTrajectoryHandler(asm *Assembler, benSvc *beneficiaries.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := parseKind(r.URL.Query().Get("kind"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		beneficiaryID := chi.URLParam(r, "beneficiaryID")
		if !beneficiaryExists(w, r, benSvc, beneficiaryID) {
			return
		}

		entries, err := asm.Build(r.Context(), beneficiaryID)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			// distinto de "sin registros": eso es 200 con []
			http.Error(w, "trajectory unavailable", http.StatusBadGateway)
			return
		}

		writeJSON(w, http.StatusOK, toEntryResponses(entries, kind))
	}
}

// appendNoteHandler godoc
// @Summary Registrar observación
// @Description Crea una observación sobre el beneficiario y devuelve la trayectoria recalculada completa. Solo pueden escribir observaciones efectores de salud, referentes afectivos y agentes comunitarios. El título requiere al menos 3 caracteres y el cuerpo no puede estar vacío.
// @Tags trajectory
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-User-Role header string false "Solo en modo dev, rol del usuario"
// @Param Authorization header string false "Bearer token en producción"
// @Param beneficiaryID path string true "ID del beneficiario"
// @Param payload body appendNoteRequest true "Título y cuerpo de la observación"
// @Success 201 {object} appendNoteResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "beneficiary not found"
// @Failure 500 {string} string "could not save note"
// @Failure 502 {string} string "trajectory unavailable"
// @Router /beneficiaries/{beneficiaryID}/notes [post]
func appendNoteHandler(gw *Gateway, benSvc *beneficiaries.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		beneficiaryID := chi.URLParam(r, "beneficiaryID")
		if !beneficiaryExists(w, r, benSvc, beneficiaryID) {
			return
		}

		var req appendNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := gw.AppendNote(r.Context(), NoteInput{
			BeneficiaryID: beneficiaryID,
			AuthorID:      claims.UserID,
			AuthorRole:    actors.Role(claims.Role),
			Title:         req.Title,
			Body:          req.Body,
		})
		switch {
		case err == nil:
		case errors.Is(err, ErrRebuild):
			// la nota ya está guardada; el cliente conserva la trayectoria que tenía
			writeJSON(w, http.StatusCreated, appendNoteResponse{
				Note:          toNoteResponse(res),
				Timeline:      []entryResponse{},
				TimelineStale: true,
			})
			return
		case errors.Is(err, ErrValidation):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, ErrForbidden):
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		default:
			http.Error(w, "could not save note", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, appendNoteResponse{
			Note:     toNoteResponse(res),
			Timeline: toEntryResponses(res.Timeline, ""),
		})
	}
}

// beneficiaryExists responde 404 si el beneficiario no existe y 502 si el storage falló.
func beneficiaryExists(w http.ResponseWriter, r *http.Request, benSvc *beneficiaries.Service, id string) bool {
	_, err := benSvc.GetByID(r.Context(), id)
	switch {
	case err == nil:
		return true
	case errors.Is(err, beneficiaries.ErrNotFound), errors.Is(err, beneficiaries.ErrInvalidInput):
		http.Error(w, "beneficiary not found", http.StatusNotFound)
	default:
		http.Error(w, "trajectory unavailable", http.StatusBadGateway)
	}
	return false
}

func parseKind(v string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(v))); k {
	case "", KindAttendance, KindNote:
		return k, nil
	default:
		return "", errors.New("kind must be attendance or note")
	}
}

// toEntryResponses aplica el filtro de kind sobre la trayectoria ya ordenada.
func toEntryResponses(entries []Entry, kind Kind) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		if kind != "" && e.Kind != kind {
			continue
		}

		resp := entryResponse{
			ID:           e.ID,
			Kind:         e.Kind,
			Instant:      e.Instant,
			DateUnparsed: e.DateUnparsed,
			Title:        e.Title,
			Description:  e.Description,
			Remark:       e.Remark,
		}
		switch e.Kind {
		case KindAttendance:
			if e.Attendance != nil {
				resp.Attendance = &attendanceDetailResponse{
					Status:      e.Attendance.Status,
					SpaceName:   e.Attendance.SpaceName,
					Responsible: e.Attendance.Responsible,
				}
			}
		case KindNote:
			if e.Note != nil {
				resp.Note = &noteDetailResponse{
					AuthorName: e.Note.AuthorName,
					AuthorRole: e.Note.AuthorRole,
				}
			}
		}
		out = append(out, resp)
	}
	return out
}

func toNoteResponse(res AppendResult) noteResponse {
	n := res.Note
	return noteResponse{
		ID:            n.ID,
		BeneficiaryID: n.BeneficiaryID,
		AuthorID:      n.AuthorID,
		Title:         n.Title,
		Body:          n.Body,
		Date:          n.Date,
		Time:          n.Time,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
