package grpcclient

import (
	"fmt"
	"sync"

	"github.com/hirestack/company-portal/internal/config"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// Client is a ready-to-use handle to the company-management service: one
// connection plus the resolved service schema and the fixed JSON codec
// options (proto field casing kept, 64-bit integers and enums as strings,
// defaults populated).
type Client struct {
	conn      *grpc.ClientConn
	service   protoreflect.ServiceDescriptor
	marshal   protojson.MarshalOptions
	unmarshal protojson.UnmarshalOptions
}

// New builds a fresh handle. Most callers want Acquire, which caches.
func New(cfg config.Config) (*Client, error) {
	svc, files, err := loadServiceDescriptor(cfg.ProtoDescriptor)
	if err != nil {
		return nil, err
	}

	types := dynamicpb.NewTypes(files)

	// Insecure transport is the development posture; the backend sits on a
	// private network. TLS remains a hardening gap.
	conn, err := grpc.NewClient(cfg.CompanyServiceURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.CompanyServiceURL, err)
	}

	zap.L().Info("company service client created",
		zap.String("target", cfg.CompanyServiceURL),
		zap.String("service", ServiceFullName),
	)

	return &Client{
		conn:    conn,
		service: svc,
		marshal: protojson.MarshalOptions{
			UseProtoNames:   true,
			EmitUnpopulated: true,
			Resolver:        types,
		},
		unmarshal: protojson.UnmarshalOptions{
			DiscardUnknown: true,
			Resolver:       types,
		},
	}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

var (
	sharedMu sync.Mutex
	shared   *Client
)

// Acquire returns the process-wide handle, creating it on first use. The
// cached handle is returned without re-validation; the mutex makes the
// initialize-once guarantee explicit instead of racing first callers.
func Acquire(cfg config.Config) (*Client, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if shared != nil {
		return shared, nil
	}

	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	shared = c
	return shared, nil
}

// Release closes the cached handle and clears the cache. Safe to call when
// no handle exists.
func Release() {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if shared == nil {
		return
	}
	_ = shared.Close()
	shared = nil
	zap.L().Info("company service client closed")
}
