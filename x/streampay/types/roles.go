package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Roles holds the privileged addresses of the program. Owner is set at
// genesis; the others may be empty until assigned.
type Roles struct {
	Owner        string `json:"owner"`
	PendingOwner string `json:"pending_owner,omitempty"`
	Depositor    string `json:"depositor,omitempty"`
	Operator     string `json:"operator,omitempty"`
}

// IsOwner reports whether addr is the current owner.
func (r Roles) IsOwner(addr string) bool {
	return r.Owner != "" && r.Owner == addr
}

// IsPendingOwner reports whether addr holds the pending ownership claim.
func (r Roles) IsPendingOwner(addr string) bool {
	return r.PendingOwner != "" && r.PendingOwner == addr
}

// IsDepositor reports whether addr is the registered depositor.
func (r Roles) IsDepositor(addr string) bool {
	return r.Depositor != "" && r.Depositor == addr
}

// IsOperator reports whether addr is the registered operator.
func (r Roles) IsOperator(addr string) bool {
	return r.Operator != "" && r.Operator == addr
}

// Validate checks that every assigned role is a well-formed address.
func (r Roles) Validate() error {
	for _, role := range []struct {
		name string
		addr string
	}{
		{"owner", r.Owner},
		{"pending owner", r.PendingOwner},
		{"depositor", r.Depositor},
		{"operator", r.Operator},
	} {
		if role.addr == "" {
			continue
		}
		if _, err := sdk.AccAddressFromBech32(role.addr); err != nil {
			return fmt.Errorf("invalid %s address %q: %w", role.name, role.addr, err)
		}
	}
	return nil
}
