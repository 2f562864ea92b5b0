package queue

import "log"

// StartSubmissionEventSubscriber attaches handler to the submission events topic.
func StartSubmissionEventSubscriber(q Queue, handler func(payload any) error) {
	if err := q.Subscribe(SubmissionEventsTopic, handler); err != nil {
		log.Println("⚠️ Failed to start subscriber for", SubmissionEventsTopic+":", err)
		return
	}
	log.Println("📡 Listening for", SubmissionEventsTopic)
}
