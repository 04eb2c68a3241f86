package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-Type")
		skipRequestBody := strings.Contains(contentType, "multipart/form-data")
		entry := AuditLogEntry{
			Timestamp: time.Now(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   getHandlerName(r.URL.Path, r.Method),
		}

		if username, _, ok := r.BasicAuth(); ok {
			entry.UserID = username
		}

		if strings.Contains(r.URL.Path, "/donations/") {
			parts := strings.Split(r.URL.Path, "/")
			for i, part := range parts {
				if part == "donations" && i+1 < len(parts) {
					entry.DonationID = parts[i+1]
					break
				}
			}
		}

		var requestBody []byte
		if !skipRequestBody && r.Body != nil {
			requestBody, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)

			if entry.DonationID != "" && strings.Contains(r.URL.Path, "/respond") {
				var respondRequest struct {
					Action string `json:"action"`
				}
				if err := json.Unmarshal(requestBody, &respondRequest); err == nil {
					if donation, err := s.storage.GetDonation(r.Context(), entry.DonationID); err == nil {
						entry.OldStatus = donation.Status
						entry.NewStatus = respondRequest.Action
					}
				}
			}
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		entry.Response = string(wrw.GetBody())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func getHandlerName(path string, method string) string {
	if strings.HasPrefix(path, "/donations") {
		if method == "POST" {
			switch {
			case strings.HasSuffix(path, "/respond"):
				return "handleRespondToDonation"
			case strings.HasSuffix(path, "/pickup"):
				return "handleMarkPickedUp"
			case strings.HasSuffix(path, "/collect"):
				return "handleMarkCollected"
			case strings.HasSuffix(path, "/reject"):
				return "handleRejectDonation"
			default:
				return "handleCreateDonation"
			}
		}
		if method == "GET" {
			if strings.HasSuffix(path, "/history") {
				return "handleDonationHistory"
			}
			return "handleGetDonation"
		}
	} else if strings.HasPrefix(path, "/donors") {
		if method == "DELETE" {
			return "handlePurgeDonorDonations"
		}
		return "handleDonorDonations"
	} else if strings.HasPrefix(path, "/agents") {
		if strings.HasSuffix(path, "/offers") {
			return "handleAgentOffers"
		}
		if method == "DELETE" {
			return "handlePurgeAgentCollections"
		}
		return "handleAgentCollections"
	}

	return "unknown"
}
