// Package server exposes the comparison engine and the simulation runner as a
// JSON API for a web presentation layer.
package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/railcompare/rail-compare/internal/comparison"
	"github.com/railcompare/rail-compare/internal/config"
	"github.com/railcompare/rail-compare/internal/fees"
	"github.com/railcompare/rail-compare/internal/simulation"
	"github.com/railcompare/rail-compare/pkg/constants"
	"github.com/railcompare/rail-compare/pkg/format"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	comparisons *comparison.Engine
	runner      *simulation.Runner
	durations   comparison.Durations
	maxBody     int64
	version     string
}

// NewHandler constructs the HTTP handler serving the comparison and
// simulation API.
func NewHandler(logger *zap.Logger, comparisons *comparison.Engine, runner *simulation.Runner, durations comparison.Durations, maxBody int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if comparisons == nil {
		comparisons = comparison.NewEngine(logger, nil, comparison.DefaultDurations())
	}
	if runner == nil {
		runner = simulation.NewRunner(logger, nil, simulation.Config{})
	}
	if durations.SWIFT == 0 {
		durations = comparison.DefaultDurations()
	}
	if maxBody <= 0 {
		maxBody = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		comparisons: comparisons,
		runner:      runner,
		durations:   durations,
		maxBody:     maxBody,
		version:     trimmedVersion,
	}

	r := chi.NewRouter()
	r.Post("/api/compare", h.handleCompare)
	r.Post("/api/simulation", h.handleSimulationStart)
	r.Get("/api/simulation", h.handleSimulationStatus)
	r.Get("/api/version", h.handleVersion)
	return r
}

// compareRequest mirrors the form inputs of the presentation layer. Amount is
// raw text and normalizes to zero when unparsable.
type compareRequest struct {
	Amount       string `json:"amount"`
	Country      string `json:"country"`
	PayeeIBAN    string `json:"payeeIban"`
	Channel      string `json:"channel"`
	FirstOfDay   bool   `json:"firstOfDay"`
	UseInstant   bool   `json:"useInstant"`
	Subscription bool   `json:"subscription"`
	SWIFTProfile string `json:"swiftProfile"`
	SWIFTOption  string `json:"swiftOption"`
}

type decisionResponse struct {
	Eligible     bool     `json:"eligible"`
	Method       string   `json:"method"`
	PayeeCountry string   `json:"payeeCountry,omitempty"`
	Reasons      []string `json:"reasons"`
	Warnings     []string `json:"warnings,omitempty"`
}

type swiftResponse struct {
	SenderFee           float64 `json:"senderFee"`
	CorrespondentFee    float64 `json:"correspondentFee"`
	BeneficiaryReceived float64 `json:"beneficiaryReceived"`
	SenderTotalOutlay   float64 `json:"senderTotalOutlay"`
	Note                string  `json:"note,omitempty"`
}

type compareResponse struct {
	Amount           float64          `json:"amount"`
	Decision         decisionResponse `json:"decision"`
	SEPAFee          float64          `json:"sepaFee"`
	SWIFT            swiftResponse    `json:"swift"`
	SEPASeconds      float64          `json:"sepaSeconds"`
	SWIFTSeconds     float64          `json:"swiftSeconds"`
	TimeSavedSeconds float64          `json:"timeSavedSeconds"`
	MoneySaved       float64          `json:"moneySaved"`
}

type simulationResponse struct {
	RunID              string  `json:"runId,omitempty"`
	Running            bool    `json:"running"`
	SEPAProgress       float64 `json:"sepaProgress"`
	SWIFTProgress      float64 `json:"swiftProgress"`
	SEPAProgressLabel  string  `json:"sepaProgressLabel"`
	SWIFTProgressLabel string  `json:"swiftProgressLabel"`
	SEPADone           bool    `json:"sepaDone"`
	SWIFTDone          bool    `json:"swiftDone"`
	Balance            float64 `json:"balance"`
}

func (h *handler) decodeCompareRequest(w http.ResponseWriter, r *http.Request) (*compareRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, false
	}
	return &req, true
}

func (req *compareRequest) toInput() comparison.Input {
	return comparison.Input{
		Amount:       config.ParseAmount(req.Amount),
		CountryName:  req.Country,
		PayeeIBAN:    req.PayeeIBAN,
		Channel:      fees.Channel(req.Channel),
		FirstOfDay:   req.FirstOfDay,
		WantsInstant: req.UseInstant,
		Recurring:    req.Subscription,
		SWIFTProfile: fees.BankProfile(req.SWIFTProfile),
		SWIFTOption:  fees.CostOption(req.SWIFTOption),
	}
}

func (h *handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCompareRequest(w, r)
	if !ok {
		return
	}

	result := h.comparisons.Compare(req.toInput())
	h.respondJSON(w, http.StatusOK, toCompareResponse(result))
}

func toCompareResponse(result comparison.Result) compareResponse {
	return compareResponse{
		Amount: result.Input.Amount,
		Decision: decisionResponse{
			Eligible:     result.Decision.Eligible,
			Method:       string(result.Decision.Method),
			PayeeCountry: result.Decision.PayeeCountry,
			Reasons:      result.Decision.Reasons,
			Warnings:     result.Decision.Warnings,
		},
		SEPAFee: result.SEPAFee,
		SWIFT: swiftResponse{
			SenderFee:           result.SWIFT.SenderFee,
			CorrespondentFee:    result.SWIFT.CorrespondentFee,
			BeneficiaryReceived: result.SWIFT.BeneficiaryReceived,
			SenderTotalOutlay:   result.SWIFT.SenderTotalOutlay,
			Note:                result.SWIFT.Note,
		},
		SEPASeconds:      result.SEPADuration.Seconds(),
		SWIFTSeconds:     result.SWIFTDuration.Seconds(),
		TimeSavedSeconds: result.TimeSaved.Seconds(),
		MoneySaved:       result.MoneySaved,
	}
}

// handleSimulationStart computes the regional fee for the submitted inputs
// and starts a run. A refused start is a guard condition, reported as a
// conflict rather than a server error.
func (h *handler) handleSimulationStart(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCompareRequest(w, r)
	if !ok {
		return
	}

	in := req.toInput()
	sepaFee := fees.CalcSEPAFee(in.Amount, in.Channel, in.FirstOfDay)
	sepaDuration := h.durations.SEPAStandard
	if in.WantsInstant {
		sepaDuration = h.durations.SEPAInstant
	}

	id, started := h.runner.Start(in.Amount, sepaFee, sepaDuration)
	if !started {
		message := "send refused: amount must be positive and within the balance"
		if h.runner.Active() {
			message = "send refused: a run is already active"
		}
		h.respondError(w, http.StatusConflict, message)
		return
	}

	h.logger.Info("simulation started via API",
		zap.String("op", "server.handleSimulationStart"),
		zap.String("runId", id),
		zap.Float64("amount", in.Amount),
	)
	h.respondJSON(w, http.StatusAccepted, toSimulationResponse(h.runner.Snapshot()))
}

func (h *handler) handleSimulationStatus(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, toSimulationResponse(h.runner.Snapshot()))
}

func toSimulationResponse(snap simulation.Snapshot) simulationResponse {
	return simulationResponse{
		RunID:              snap.RunID,
		Running:            snap.Running,
		SEPAProgress:       snap.SEPAProgress,
		SWIFTProgress:      snap.SWIFTProgress,
		SEPAProgressLabel:  format.Progress(snap.SEPAProgress),
		SWIFTProgressLabel: format.Progress(snap.SWIFTProgress),
		SEPADone:           snap.SEPADone,
		SWIFTDone:          snap.SWIFTDone,
		Balance:            snap.Balance,
	}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.respondJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

