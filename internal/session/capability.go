package session

import (
	"golang.org/x/exp/slices"

	"github.com/protomem/licensing/internal/model"
)

type Capability string

const (
	CapViewRecords        Capability = "view_records"
	CapManageDrivers      Capability = "manage_drivers"
	CapValidateDocuments  Capability = "validate_documents"
	CapRecordTests        Capability = "record_tests"
	CapExportCertificates Capability = "export_certificates"
	CapIssueLicenses      Capability = "issue_licenses"
	CapManageLicenses     Capability = "manage_licenses"
	CapDeleteRecords      Capability = "delete_records"
	CapAdministerUsers    Capability = "administer_users"
)

var _analystCapabilities = []Capability{
	CapViewRecords,
	CapManageDrivers,
	CapValidateDocuments,
	CapRecordTests,
	CapExportCertificates,
}

var _grants = map[model.Role][]Capability{
	model.RoleAnalyst: _analystCapabilities,
	model.RoleAdministrator: append(append([]Capability(nil), _analystCapabilities...),
		CapIssueLicenses,
		CapManageLicenses,
		CapDeleteRecords,
		CapAdministerUsers,
	),
}

// Can is the only place a role is turned into a permission decision.
func Can(role model.Role, c Capability) bool {
	return slices.Contains(_grants[role], c)
}

func CapabilitiesOf(role model.Role) []Capability {
	return append([]Capability(nil), _grants[role]...)
}
