package background

import (
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/unheard-app/unheard-api/utils"
)

// background task names shared by the API enqueuer and the worker
const (
	TaskBroadcastNewRequest = "broadcast_new_request"
	TaskNotifyOfferReceived = "notify_offer_received"
	TaskNotifyOfferAccepted = "notify_offer_accepted"
	TaskSweepStaleOffers    = "sweep_stale_offers"
)

// onesignal template ids
const (
	BROADCAST_NEW_REQUEST = "5c83b4a2-9f1d-44e7-a1c3-6a02b7f08d14"
	NOTIFY_OFFER_ACCEPTED = "e1f6c0dd-2a5b-4f0e-9a77-38c54c1d90b2"
)

// BroadcastNewRequest is a background job to tell subscribed volunteers
// that a new help request is waiting
func (m *BackgroundManager) BroadcastNewRequest(requestID string) error {
	id, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return err
	}

	request, err := m.mongo.GetHelpRequest(id)
	if err != nil {
		return err
	}

	return m.notifySubscribersByTemplate(BROADCAST_NEW_REQUEST, map[string]interface{}{
		"notification_type": "BROADCAST_NEW_REQUEST",
		"request_id":        request.ID.Hex(),
	})
}

// NotifyOfferReceived is a background job to tell a request owner that a
// volunteer has offered to help. The message is localized to the owner's
// preferred language.
func (m *BackgroundManager) NotifyOfferReceived(requestID, offerID string) error {
	rid, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(offerID)
	if err != nil {
		return err
	}

	request, err := m.mongo.GetHelpRequest(rid)
	if err != nil {
		return err
	}
	offer, err := m.mongo.GetOffer(oid)
	if err != nil {
		return err
	}

	lang := "en"
	if owner, err := m.store.GetAccount(request.AccountNumber); err == nil {
		if l, ok := owner.Profile.Metadata["language"].(string); ok && l != "" {
			lang = l
		}
	} else {
		log.WithFields(log.Fields{
			"prefix":         "background",
			"account_number": request.AccountNumber,
		}).WithError(err).Warn("fail to load request owner")
	}

	loc := utils.NewLocalizer(lang)
	heading, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: "notification.offer_received.heading",
	})
	if err != nil {
		return err
	}
	content, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: "notification.offer_received.content",
		TemplateData: map[string]interface{}{
			"VolunteerName": offer.VolunteerName,
		},
	})
	if err != nil {
		return err
	}

	return m.NotifyAccountByText(request.AccountNumber,
		map[string]string{"en": heading},
		map[string]string{"en": content},
		map[string]interface{}{
			"notification_type": "NOTIFY_OFFER_RECEIVED",
			"request_id":        request.ID.Hex(),
			"offer_id":          offer.ID.Hex(),
		})
}

// NotifyOfferAccepted is a background job to tell a volunteer that the
// requester accepted the offer and a session is open
func (m *BackgroundManager) NotifyOfferAccepted(offerID, sessionID string) error {
	oid, err := primitive.ObjectIDFromHex(offerID)
	if err != nil {
		return err
	}

	offer, err := m.mongo.GetOffer(oid)
	if err != nil {
		return err
	}

	return m.notifyAccountsByTemplate([]string{offer.AccountNumber}, NOTIFY_OFFER_ACCEPTED, map[string]interface{}{
		"notification_type": "NOTIFY_OFFER_ACCEPTED",
		"offer_id":          offer.ID.Hex(),
		"session_id":        sessionID,
	})
}

// SweepStaleOffers is a periodic background job to reject pending offers
// whose request is no longer open
func (m *BackgroundManager) SweepStaleOffers() error {
	_, err := m.mongo.RejectStaleOffers()
	return err
}
