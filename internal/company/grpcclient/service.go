package grpcclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hirestack/company-portal/internal/company/domain"
	"github.com/hirestack/company-portal/internal/config"
	"github.com/hirestack/company-portal/internal/metrics"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Backend implements domain.Service against the company gRPC service. The
// connection handle is acquired lazily on first call and shared process-wide.
type Backend struct {
	cfg config.Config
	m   *metrics.HTTPMetrics
	log *zap.Logger
}

var _ domain.Service = (*Backend)(nil)

func NewBackend(cfg config.Config, m *metrics.HTTPMetrics, log *zap.Logger) *Backend {
	return &Backend{cfg: cfg, m: m, log: log}
}

// call forwards one operation and decodes the response into out when non-nil.
func (b *Backend) call(ctx context.Context, operation string, in, out any) error {
	handle, err := Acquire(b.cfg)
	if err != nil {
		b.m.ObserveBackendCall(operation, err)
		return err
	}

	var request []byte
	if in != nil {
		request, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", operation, err)
		}
	}

	response, err := handle.Invoke(ctx, operation, request)
	b.m.ObserveBackendCall(operation, err)
	if err != nil {
		b.log.Warn("backend call failed", zap.String("operation", operation), zap.Error(err))
		return classify(err)
	}

	if out != nil {
		if err := json.Unmarshal(response, out); err != nil {
			return fmt.Errorf("%s: decode response: %w", operation, err)
		}
	}
	return nil
}

// classify maps transport status codes onto the portal error taxonomy,
// keeping the backend detail message.
func classify(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return domain.NewBackendError(domain.ErrInternal, err.Error())
	}

	detail := st.Message()
	switch st.Code() {
	case codes.AlreadyExists:
		return domain.NewBackendError(domain.ErrAlreadyExists, detail)
	case codes.InvalidArgument:
		return domain.NewBackendError(domain.ErrInvalidArgument, detail)
	case codes.Unavailable:
		return domain.NewBackendError(domain.ErrUnavailable, detail)
	case codes.NotFound:
		return domain.NewBackendError(domain.ErrNotFound, detail)
	case codes.Unauthenticated, codes.PermissionDenied:
		return domain.NewBackendError(domain.ErrInvalidCredentials, detail)
	default:
		return domain.NewBackendError(domain.ErrInternal, detail)
	}
}

func (b *Backend) ValidateCredentials(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	in := map[string]string{"email": email, "password": password}
	var out domain.LoginResult
	if err := b.call(ctx, "ValidateCredentials", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *Backend) RegisterCompany(ctx context.Context, req domain.RegisterRequest) (json.RawMessage, error) {
	var out json.RawMessage
	if err := b.call(ctx, "RegisterCompany", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Backend) CreateCompany(ctx context.Context, in domain.CreateCompanyInput) (*domain.Company, error) {
	var out domain.Company
	if err := b.call(ctx, "CreateCompany", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *Backend) UpdateCompanyMetadata(ctx context.Context, in domain.MetadataUpdate) (json.RawMessage, error) {
	var out json.RawMessage
	if err := b.call(ctx, "UpdateCompany", in, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Backend) UpdateCompanyContact(ctx context.Context, in domain.ContactUpdate) (json.RawMessage, error) {
	var out json.RawMessage
	if err := b.call(ctx, "UpdateCompanyContact", in, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Backend) UpdateCompanyBanking(ctx context.Context, in domain.BankingUpdate) (json.RawMessage, error) {
	var out json.RawMessage
	if err := b.call(ctx, "UpdateCompanyBanking", in, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Backend) GetCompanyFullDetails(ctx context.Context, id string) (map[string]any, error) {
	in := map[string]string{"id": id}
	var out map[string]any
	if err := b.call(ctx, "GetCompanyFullDetails", in, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Backend) RequestVerification(ctx context.Context, companyID string) (json.RawMessage, error) {
	in := map[string]string{"company_id": companyID}
	var out json.RawMessage
	if err := b.call(ctx, "RequestVerification", in, &out); err != nil {
		return nil, err
	}
	return out, nil
}
