package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gagliardetto/solana-go"
	"github.com/gorilla/mux"

	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleConfig handles GET /api/v1/config
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.receiver.GetConfig(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, cfg)
}

// handleLatestMessage handles GET /api/v1/latest-message
func (s *Server) handleLatestMessage(w http.ResponseWriter, r *http.Request) {
	latest, err := s.receiver.GetLatestMessage(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, latest)
}

// handleAccount handles GET /api/v1/accounts/{address}
func (s *Server) handleAccount(w http.ResponseWriter, r *http.Request) {
	if s.accounts == nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "account queries are not enabled"})
		return
	}

	address, err := solana.PublicKeyFromBase58(mux.Vars(r)["address"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid address: " + err.Error()})
		return
	}

	acc, err := s.accounts.Account(r.Context(), address)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeData(w, AccountResponse{
		Address:      acc.Address,
		Mint:         acc.Mint,
		Authority:    acc.Authority,
		TokenProgram: acc.TokenProgram,
		Amount:       acc.Amount,
		Frozen:       acc.Frozen,
	})
}

func (s *Server) writeData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, QueryResponse{Data: data, QueriedAt: s.now().UTC()})
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrNotInitialized),
		errors.Is(err, types.ErrLatestMessageNotFound),
		errors.Is(err, types.ErrAccountNotFound):
		status = http.StatusNotFound
	default:
		s.logger.Error().Err(err).Msg("query failed")
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Kind: types.ErrorKind(err)})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
