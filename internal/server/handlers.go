package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/bigfive/internal/endpoint"
	"github.com/abhisek/bigfive/internal/survey"
)

// maxBodyBytes bounds a submission body. 120 answers fit in well under 16KiB.
const maxBodyBytes = 1 << 20

func (s *Server) createResult(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			RecordSubmission(OutcomeInvalid)
			s.log.Debug("rejected submission", zap.Int64("limit", tooLarge.Limit))
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}
		s.rejectSubmission(c, fmt.Errorf("read body: %w", err))
		return
	}
	if err := validateSubmission(body); err != nil {
		s.rejectSubmission(c, err)
		return
	}

	var req survey.SubmitRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.rejectSubmission(c, fmt.Errorf("decode body: %w", err))
		return
	}
	if err := s.checkAnswers(req); err != nil {
		s.rejectSubmission(c, err)
		return
	}

	res := endpoint.NewResult(s.newID(), req)
	if err := s.results.Save(c.Request.Context(), res); err != nil {
		RecordSubmission(OutcomeError)
		s.log.Error("store result", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store result"})
		return
	}

	RecordSubmission(OutcomeCreated)
	RecordTimeElapsed(req.TimeElapsed)
	s.log.Info("result stored",
		zap.String("result_id", res.ID),
		zap.String("test_id", res.TestID),
		zap.Int("answers", len(res.Answers)))
	c.JSON(http.StatusCreated, survey.SubmitResponse{ID: res.ID})
}

func (s *Server) rejectSubmission(c *gin.Context, err error) {
	RecordSubmission(OutcomeInvalid)
	s.log.Debug("rejected submission", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// checkAnswers enforces what the schema cannot: the configured test id,
// unique answer ids and, with a bank, known question ids.
func (s *Server) checkAnswers(req survey.SubmitRequest) error {
	if s.testID != "" && req.TestID != s.testID {
		return fmt.Errorf("testId %q does not match %q", req.TestID, s.testID)
	}
	bank := s.bank.Load()
	seen := make(map[string]bool, len(req.Answers))
	for _, a := range req.Answers {
		if seen[a.ID] {
			return fmt.Errorf("duplicate answer for %s", a.ID)
		}
		seen[a.ID] = true

		if bank == nil {
			continue
		}
		q, ok := bank.ByID(a.ID)
		if !ok {
			return fmt.Errorf("unknown question %s", a.ID)
		}
		if q.Domain != a.Domain || q.Facet != a.Facet {
			return fmt.Errorf("answer %s: domain/facet %s/%d, want %s/%d", a.ID, a.Domain, a.Facet, q.Domain, q.Facet)
		}
	}
	return nil
}

func (s *Server) getResult(c *gin.Context) {
	id := c.Param("id")
	res, err := s.results.Get(c.Request.Context(), id)
	if errors.Is(err, endpoint.ErrNotFound) {
		RecordFetch(false)
		c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
		return
	}
	if err != nil {
		s.log.Error("load result", zap.String("result_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load result"})
		return
	}
	RecordFetch(true)
	c.JSON(http.StatusOK, res)
}

func (s *Server) getQuestions(c *gin.Context) {
	bank := s.bank.Load()
	if bank == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no question bank configured"})
		return
	}
	c.JSON(http.StatusOK, bank)
}
