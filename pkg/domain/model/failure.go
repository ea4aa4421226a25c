package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// FailureKind classifies why an operation did not succeed
type FailureKind string

const (
	KindMissingCredentials          FailureKind = "missing_credentials"
	KindMissingUserManagementConfig FailureKind = "missing_user_management_config"
	KindTemplateMissing             FailureKind = "template_missing"
	KindTemplateUnparseable         FailureKind = "template_unparseable"
	KindAuthFailure                 FailureKind = "auth_failure"
	KindAPIError                    FailureKind = "api_error"
	KindCreationFailed              FailureKind = "creation_failed"
	KindNoLicenseAvailable          FailureKind = "no_license_available"
	KindNetworkError                FailureKind = "network_error"
	KindTimeout                     FailureKind = "timeout"
	KindUnknownError                FailureKind = "unknown_error"
	KindSubscriptionNotFound        FailureKind = "subscription_not_found"
	KindUserNotFound                FailureKind = "user_not_found"
	KindWebhookNotConfigured        FailureKind = "webhook_not_configured"
	KindWebhookFailed               FailureKind = "webhook_failed"
)

// Error tags for categorization, one per FailureKind
var (
	ErrTagMissingCredentials          = goerr.NewTag(string(KindMissingCredentials))
	ErrTagMissingUserManagementConfig = goerr.NewTag(string(KindMissingUserManagementConfig))
	ErrTagTemplateMissing             = goerr.NewTag(string(KindTemplateMissing))
	ErrTagTemplateUnparseable         = goerr.NewTag(string(KindTemplateUnparseable))
	ErrTagAuthFailure                 = goerr.NewTag(string(KindAuthFailure))
	ErrTagAPIError                    = goerr.NewTag(string(KindAPIError))
	ErrTagCreationFailed              = goerr.NewTag(string(KindCreationFailed))
	ErrTagNoLicenseAvailable          = goerr.NewTag(string(KindNoLicenseAvailable))
	ErrTagNetworkError                = goerr.NewTag(string(KindNetworkError))
	ErrTagTimeout                     = goerr.NewTag(string(KindTimeout))
	ErrTagUnknownError                = goerr.NewTag(string(KindUnknownError))
	ErrTagSubscriptionNotFound        = goerr.NewTag(string(KindSubscriptionNotFound))
	ErrTagUserNotFound                = goerr.NewTag(string(KindUserNotFound))
	ErrTagWebhookNotConfigured        = goerr.NewTag(string(KindWebhookNotConfigured))
	ErrTagWebhookFailed               = goerr.NewTag(string(KindWebhookFailed))
)

// Keys of the goerr values attached to failures
const (
	keyFailureKind = "failure_kind"
	KeyStatus      = "status"
	KeyDetails     = "details"
	KeyCode        = "code"
)

// Failure is the renderable view of a classified error
type Failure struct {
	Kind       FailureKind `json:"error"`
	Message    string      `json:"message"`
	Details    string      `json:"details,omitempty"`
	StatusCode int         `json:"status_code,omitempty"`
	Code       string      `json:"code,omitempty"`
}

// NewFailure creates an error classified as kind
func NewFailure(kind FailureKind, msg string, options ...goerr.Option) error {
	options = append(options, tagOf(kind), goerr.V(keyFailureKind, kind))
	return goerr.New(msg, options...)
}

// WrapFailure wraps cause as an error classified as kind
func WrapFailure(cause error, kind FailureKind, msg string, options ...goerr.Option) error {
	options = append(options, tagOf(kind), goerr.V(keyFailureKind, kind))
	return goerr.Wrap(cause, msg, options...)
}

// KindOf returns the failure kind carried by err. Unclassified errors are unknown_error.
func KindOf(err error) FailureKind {
	if err == nil {
		return ""
	}
	if kind, ok := goerr.Values(err)[keyFailureKind].(FailureKind); ok {
		return kind
	}
	return KindUnknownError
}

// FailureOf converts err into its renderable form; nil for a nil error
func FailureOf(err error) *Failure {
	if err == nil {
		return nil
	}

	values := goerr.Values(err)
	f := &Failure{
		Kind:    KindOf(err),
		Message: err.Error(),
	}
	if details, ok := values[KeyDetails].(string); ok {
		f.Details = details
	}
	if status, ok := values[KeyStatus].(int); ok {
		f.StatusCode = status
	}
	if code, ok := values[KeyCode].(string); ok {
		f.Code = code
	}
	return f
}

func tagOf(kind FailureKind) goerr.Option {
	switch kind {
	case KindMissingCredentials:
		return goerr.T(ErrTagMissingCredentials)
	case KindMissingUserManagementConfig:
		return goerr.T(ErrTagMissingUserManagementConfig)
	case KindTemplateMissing:
		return goerr.T(ErrTagTemplateMissing)
	case KindTemplateUnparseable:
		return goerr.T(ErrTagTemplateUnparseable)
	case KindAuthFailure:
		return goerr.T(ErrTagAuthFailure)
	case KindAPIError:
		return goerr.T(ErrTagAPIError)
	case KindCreationFailed:
		return goerr.T(ErrTagCreationFailed)
	case KindNoLicenseAvailable:
		return goerr.T(ErrTagNoLicenseAvailable)
	case KindNetworkError:
		return goerr.T(ErrTagNetworkError)
	case KindTimeout:
		return goerr.T(ErrTagTimeout)
	case KindSubscriptionNotFound:
		return goerr.T(ErrTagSubscriptionNotFound)
	case KindUserNotFound:
		return goerr.T(ErrTagUserNotFound)
	case KindWebhookNotConfigured:
		return goerr.T(ErrTagWebhookNotConfigured)
	case KindWebhookFailed:
		return goerr.T(ErrTagWebhookFailed)
	default:
		return goerr.T(ErrTagUnknownError)
	}
}
