package model

import (
	"strconv"
	"strings"
)

const (
	TypeVirtualMachine  = "Microsoft.Compute/virtualMachines"
	TypeDisk            = "Microsoft.Compute/disks"
	TypePublicIPAddress = "Microsoft.Network/publicIPAddresses"
	TypeServicePlan     = "Microsoft.Web/serverfarms"
)

// ResourceDescriptor is the typed identity of an ARM resource.
type ResourceDescriptor struct {
	ID             string `json:"resource_id"`
	SubscriptionID string `json:"subscription_id"`
	ResourceGroup  string `json:"resource_group"`
	Namespace      string `json:"namespace"`
	Type           string `json:"type"`
	Name           string `json:"name"`
	DisplayName    string `json:"display_name,omitempty"`
	Location       string `json:"location,omitempty"`
}

// FullType returns "<namespace>/<type>", e.g. Microsoft.Compute/virtualMachines.
func (d ResourceDescriptor) FullType() string {
	return d.Namespace + "/" + d.Type
}

// ParseResourceID parses
// /subscriptions/{sub}/resourceGroups/{rg}/providers/{namespace}/{type}/{name}[/{childType}/{childName}...]
// Segment 4 is the resource group and the last segment is the name.
func ParseResourceID(id string) (ResourceDescriptor, error) {
	fail := func(reason string) (ResourceDescriptor, error) {
		return ResourceDescriptor{}, &MalformedResourceIDError{ID: id, Reason: reason}
	}

	if strings.TrimSpace(id) == "" {
		return fail("empty id")
	}

	parts := strings.Split(id, "/")
	if parts[0] != "" {
		return fail("must start with '/'")
	}
	if len(parts) < 9 {
		return fail("too few segments")
	}
	if len(parts)%2 == 0 {
		return fail("resource type and name segments are unbalanced")
	}
	for i, part := range parts[1:] {
		if part == "" {
			return fail("empty segment at index " + strconv.Itoa(i+1))
		}
	}

	if !strings.EqualFold(parts[1], "subscriptions") {
		return fail("expected 'subscriptions' at index 1")
	}
	if !strings.EqualFold(parts[3], "resourceGroups") {
		return fail("expected 'resourceGroups' at index 3")
	}
	if !strings.EqualFold(parts[5], "providers") {
		return fail("expected 'providers' at index 5")
	}

	var types []string
	for i := 7; i < len(parts); i += 2 {
		types = append(types, parts[i])
	}

	return ResourceDescriptor{
		ID:             id,
		SubscriptionID: parts[2],
		ResourceGroup:  parts[4],
		Namespace:      parts[6],
		Type:           strings.Join(types, "/"),
		Name:           parts[len(parts)-1],
	}, nil
}

// ParseResourceIDOfType parses id and checks it declares fullType.
func ParseResourceIDOfType(id, fullType string) (ResourceDescriptor, error) {
	d, err := ParseResourceID(id)
	if err != nil {
		return d, err
	}
	if !strings.EqualFold(d.FullType(), fullType) {
		return ResourceDescriptor{}, &MalformedResourceIDError{
			ID:     id,
			Reason: "expected resource type " + fullType + ", got " + d.FullType(),
		}
	}
	return d, nil
}
