package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tempobook/backend/internal/domain"
)

type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		ID             string `json:"id"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		EmailAddresses []struct {
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
	} `json:"data"`
}

// AuthProviderWebhook mirrors auth-provider events into the users table.
// Signature failures are answered in plain text, unlike the JSON errors of
// the rest of the API; the provider's delivery dashboard shows the body
// verbatim.
func (h *Handler) AuthProviderWebhook(w http.ResponseWriter, r *http.Request) {
	eventID := r.Header.Get("svix-id")
	timestamp := r.Header.Get("svix-timestamp")
	signature := r.Header.Get("svix-signature")

	if eventID == "" || timestamp == "" || signature == "" {
		http.Error(w, "missing svix headers", http.StatusBadRequest)
		return
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.verifier.Verify(payload, eventID, timestamp, signature); err != nil {
		http.Error(w, "webhook verification failed", http.StatusBadRequest)
		return
	}

	event := &webhookEvent{}
	if err := json.Unmarshal(payload, event); err != nil {
		http.Error(w, "malformed event payload", http.StatusBadRequest)
		return
	}

	if event.Type == "user.created" {
		if err := h.handleUserCreated(r, eventID, event); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) handleUserCreated(r *http.Request, eventID string, event *webhookEvent) error {
	primaryEmail := ""
	if len(event.Data.EmailAddresses) > 0 {
		primaryEmail = event.Data.EmailAddresses[0].EmailAddress
	}
	if event.Data.ID == "" || primaryEmail == "" {
		// Nothing to mirror; acknowledge so the provider stops retrying.
		return nil
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	// The provider retries deliveries; remember processed event ids so a
	// redelivery does not insert the user twice.
	eventKey := "webhook_event_" + eventID
	firstDelivery, err := h.redisClient.SetNX(ctx,
		eventKey,
		1,
		time.Duration(h.config.Webhook.EventTTL)*time.Second,
	).Result()
	if err != nil {
		return err
	}
	if !firstDelivery {
		return nil
	}

	var name *string
	fullName := strings.TrimSpace(event.Data.FirstName + " " + event.Data.LastName)
	if fullName != "" {
		name = &fullName
	}

	user := &domain.User{
		ID:    event.Data.ID,
		Email: primaryEmail,
		Name:  name,
	}
	if err := h.repository.CreateUser(user); err != nil {
		// Give the reservation back so the provider's retry can attempt
		// the insert again. Fresh context: the request one may already be
		// past its deadline after the failed insert.
		delCtx, cancelDel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
		defer cancelDel()
		h.redisClient.Del(delCtx, eventKey)
		return err
	}

	return nil
}
