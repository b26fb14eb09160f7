package grpcclient

import (
	"context"
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// OperationNotFoundError reports an operation name missing from the service
// schema. It is detected before anything reaches the wire.
type OperationNotFoundError struct {
	Operation string
}

func (e *OperationNotFoundError) Error() string {
	return fmt.Sprintf("operation %q not found on %s", e.Operation, ServiceFullName)
}

// Invoke calls one named unary operation with a JSON request payload and
// returns the JSON response. Exactly one outcome per call; no retries and no
// timeout beyond what ctx imposes.
func (c *Client) Invoke(ctx context.Context, operation string, request []byte) ([]byte, error) {
	method := c.service.Methods().ByName(protoreflect.Name(operation))
	if method == nil {
		return nil, &OperationNotFoundError{Operation: operation}
	}

	req := dynamicpb.NewMessage(method.Input())
	if len(request) > 0 {
		if err := c.unmarshal.Unmarshal(request, req); err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", operation, err)
		}
	}

	resp := dynamicpb.NewMessage(method.Output())
	fullMethod := fmt.Sprintf("/%s/%s", c.service.FullName(), operation)
	if err := c.conn.Invoke(ctx, fullMethod, req, resp); err != nil {
		return nil, err
	}

	out, err := c.marshal.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", operation, err)
	}
	return out, nil
}
