package http

import (
	"fmt"

	"request-metrics/internal/shared/svcerrors"
)

const (
	codeEchoEmptyBody = "ECHO_1000"

	codeInternalMetricsExportFailed = "METRICS_9000"
	codeInternalHealthCheckFailed   = "HEALTH_9000"
	codeInternalHijackFailed        = "RAW_9000"
	codeInternalEchoReadFailed      = "ECHO_9000"
)

// errMetricsExportFailed returns an error when the registry cannot export a namespace.
func errMetricsExportFailed(namespace string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalMetricsExportFailed, fmt.Errorf("exportNamespace %q: %w", namespace, cause))
}

func errHealthCheckFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalHealthCheckFailed, fmt.Errorf("healthCheck: %w", cause))
}

func errHijackFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalHijackFailed, fmt.Errorf("hijack: %w", cause))
}

func errEchoEmptyBody() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeEchoEmptyBody, "request body is empty", nil)
}

func errEchoReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEchoReadFailed, fmt.Errorf("readBody: %w", cause))
}
