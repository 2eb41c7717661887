package models

// SubmissionState is where a storefront session is in placing an order
type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "idle"
	SubmissionValidating SubmissionState = "validating"
	SubmissionSubmitting SubmissionState = "submitting"
	SubmissionCompleted  SubmissionState = "completed"
	SubmissionFailed     SubmissionState = "failed"
	// SubmissionRedirected means the order was handed to hosted checkout;
	// completion is observed later through the payment return.
	SubmissionRedirected SubmissionState = "redirected"
)
