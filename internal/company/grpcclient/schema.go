package grpcclient

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// ServiceFullName is the backend service resolved inside the schema.
const ServiceFullName = "companies.v1.CompanyService"

// Candidate descriptor-set locations, checked in order: the portal's own
// proto tree first, then a sibling backend checkout.
var descriptorCandidates = []string{
	"proto/companies/v1/company.pb",
	"../company-service/proto/companies/v1/company.pb",
}

// SchemaError is a configuration failure while locating or resolving the
// service schema. It carries a remediation hint for the operator.
type SchemaError struct {
	Message string
	Hint    string
}

func (e *SchemaError) Error() string {
	if e.Hint == "" {
		return e.Message
	}
	return e.Message + " (" + e.Hint + ")"
}

func candidatePaths(override string) []string {
	if strings.TrimSpace(override) != "" {
		return append([]string{override}, descriptorCandidates...)
	}
	return descriptorCandidates
}

// loadServiceDescriptor locates the descriptor-set file, parses it and
// resolves the CompanyService definition.
func loadServiceDescriptor(override string) (protoreflect.ServiceDescriptor, *protoregistry.Files, error) {
	paths := candidatePaths(override)

	var path string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			path = p
			break
		}
	}
	if path == "" {
		return nil, nil, &SchemaError{
			Message: fmt.Sprintf("company service descriptor not found; searched: %s", strings.Join(paths, ", ")),
			Hint:    "generate it with protoc --descriptor_set_out --include_imports, or point COMPANY_PROTO_DESCRIPTOR at an existing file",
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read descriptor %s: %w", path, err)
	}

	var set descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(data, &set); err != nil {
		return nil, nil, &SchemaError{
			Message: fmt.Sprintf("descriptor %s is not a valid FileDescriptorSet: %v", path, err),
			Hint:    "regenerate it with protoc --descriptor_set_out",
		}
	}

	files, err := protodesc.NewFiles(&set)
	if err != nil {
		return nil, nil, fmt.Errorf("build registry from %s: %w", path, err)
	}

	desc, err := files.FindDescriptorByName(ServiceFullName)
	if err != nil {
		return nil, nil, &SchemaError{
			Message: fmt.Sprintf("%s not found in %s; available packages: %s",
				ServiceFullName, path, strings.Join(packageNames(files), ", ")),
			Hint: "check that the descriptor was generated from companies/v1/company.proto",
		}
	}

	svc, ok := desc.(protoreflect.ServiceDescriptor)
	if !ok {
		return nil, nil, &SchemaError{
			Message: fmt.Sprintf("%s in %s is a %T, not a service", ServiceFullName, path, desc),
		}
	}

	return svc, files, nil
}

func packageNames(files *protoregistry.Files) []string {
	seen := map[string]struct{}{}
	files.RangeFiles(func(fd protoreflect.FileDescriptor) bool {
		seen[string(fd.Package())] = struct{}{}
		return true
	})
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
