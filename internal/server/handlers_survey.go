package server

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/recipe-finder/internal/metrics"
	"github.com/jonathan/recipe-finder/internal/ranking"
	"github.com/jonathan/recipe-finder/internal/schemas"
	"github.com/jonathan/recipe-finder/internal/types"
)

// SurveyResponse is returned for an accepted survey.
type SurveyResponse struct {
	Survey          types.Survey   `json:"survey"`
	Recommendations []types.Recipe `json:"recommendations"`
}

// handleSubmitSurvey stores the answers and returns recommendations for them.
func (s *Server) handleSubmitSurvey(w http.ResponseWriter, r *http.Request) {
	const invalid = "Invalid survey data"

	body, err := readBody(r)
	if err != nil {
		s.writeError(w, r, err, "Failed to process survey")
		return
	}
	if err := schemas.Validate(schemas.SurveySchema, body); err != nil {
		s.writeError(w, r, newValidationError(invalid, err), "Failed to process survey")
		return
	}

	var answers types.SurveyAnswers
	if err := decodeJSON(body, &answers, invalid); err != nil {
		s.writeError(w, r, err, "Failed to process survey")
		return
	}
	if err := answers.Validate(); err != nil {
		s.writeError(w, r, newValidationError(invalid, err), "Failed to process survey")
		return
	}

	survey, err := s.store.CreateSurvey(r.Context(), answers)
	if err != nil {
		s.writeError(w, r, err, "Failed to process survey")
		return
	}

	catalog, err := s.store.All(r.Context())
	if err != nil {
		s.writeError(w, r, err, "Failed to process survey")
		return
	}

	recommendations := ranking.Recommend(catalog, survey.SurveyAnswers, s.cfg.Recommend.TopN)
	metrics.RecordSurvey(len(recommendations))

	s.logger.Debug("survey processed",
		zap.Int("survey_id", survey.ID),
		zap.Int("recommendations", len(recommendations)),
		zap.String("request_id", requestIDFrom(r.Context())),
	)

	s.jsonResponse(w, http.StatusOK, SurveyResponse{
		Survey:          survey,
		Recommendations: recommendations,
	})
}
