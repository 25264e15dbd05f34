package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultSpecialization - специализация, которая подставляется при любой ошибке классификатора
const DefaultSpecialization = "General"

// Причины деградации
const (
	ReasonTimeout     = "timeout"
	ReasonTransport   = "transport"
	ReasonBadStatus   = "bad_status"
	ReasonMalformed   = "malformed"
	ReasonEmptyResult = "empty"
)

const maxResponseBytes = 64 << 10

// Result - итог классификации. Fallback == true, если вернули DefaultSpecialization из-за сбоя.
type Result struct {
	Specialization string
	Fallback       bool
	Reason         string
}

// FallbackRecorder учитывает деградации классификатора
type FallbackRecorder interface {
	ClassifierFallback(reason string)
}

// Gateway - клиент внешнего сервиса классификации симптомов
type Gateway struct {
	url        string
	timeout    time.Duration
	httpClient *http.Client
	logger     *logrus.Logger
	recorder   FallbackRecorder
}

// NewGateway создает Gateway. timeout ограничивает каждый вызов целиком.
func NewGateway(url string, timeout time.Duration, logger *logrus.Logger, recorder FallbackRecorder) *Gateway {
	return &Gateway{
		url:     url,
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:   logger,
		recorder: recorder,
	}
}

type predictRequest struct {
	Text string `json:"text"`
}

type predictResponse struct {
	Prediction string `json:"prediction"`
}

type classifyError struct {
	reason string
	err    error
}

func (e *classifyError) Error() string { return fmt.Sprintf("%s: %v", e.reason, e.err) }
func (e *classifyError) Unwrap() error { return e.err }

// Classify возвращает специализацию по тексту симптомов. Ошибка наружу не пробрасывается:
// при таймауте, не-2xx ответе или битом ответе возвращается DefaultSpecialization.
func (g *Gateway) Classify(ctx context.Context, symptoms string) Result {
	log := g.logger.WithFields(logrus.Fields{
		"component": "classifier",
		"method":    "Classify",
	})

	label, err := g.predict(ctx, symptoms)
	if err != nil {
		reason := ReasonTransport
		var cerr *classifyError
		if errors.As(err, &cerr) {
			reason = cerr.reason
		}
		log.WithError(err).WithField("reason", reason).Warn("Classifier unavailable, falling back to default specialization")
		if g.recorder != nil {
			g.recorder.ClassifierFallback(reason)
		}
		return Result{Specialization: DefaultSpecialization, Fallback: true, Reason: reason}
	}

	log.WithField("specialization", label).Debug("Symptoms classified")
	return Result{Specialization: label}
}

func (g *Gateway) predict(ctx context.Context, symptoms string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	payload, err := json.Marshal(predictRequest{Text: symptoms})
	if err != nil {
		return "", &classifyError{reason: ReasonMalformed, err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(payload))
	if err != nil {
		return "", &classifyError{reason: ReasonTransport, err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return "", &classifyError{reason: ReasonTimeout, err: err}
		}
		return "", &classifyError{reason: ReasonTransport, err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &classifyError{reason: ReasonBadStatus, err: fmt.Errorf("unexpected status code %d", resp.StatusCode)}
	}

	var body predictResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return "", &classifyError{reason: ReasonTimeout, err: err}
		}
		return "", &classifyError{reason: ReasonMalformed, err: err}
	}

	label := strings.TrimSpace(body.Prediction)
	if label == "" {
		return "", &classifyError{reason: ReasonEmptyResult, err: errors.New("empty prediction")}
	}
	return label, nil
}

func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
