package services

// Closed value sets for workflow statuses and service-order classification.
// The stored values are stable machine keys; the label maps carry the
// pt-BR text shown on screens and reports.

// Quotation statuses. Purely user-set tags, no automatic transitions.
const (
	QuotationStatusInQuotation = "in_quotation"
	QuotationStatusApproved    = "approved"
	QuotationStatusCancelled   = "cancelled"
)

// Budget statuses.
const (
	BudgetStatusOpen       = "open"
	BudgetStatusInstalling = "installing"
	BudgetStatusDone       = "done"
	BudgetStatusCancelled  = "cancelled"
)

// Service-order statuses.
const (
	OrderStatusScheduled  = "scheduled"
	OrderStatusInProgress = "in_progress"
	OrderStatusDone       = "done"
	OrderStatusCancelled  = "cancelled"
)

// Service actions: what the field team is going out to do.
const (
	ActionInstallation = "installation"
	ActionMaintenance  = "maintenance"
	ActionRemoval      = "removal"
)

// Security systems the company installs and services.
const (
	SystemAlarm         = "alarm"
	SystemCCTV          = "cctv"
	SystemElectricFence = "electric_fence"
	SystemAccessControl = "access_control"
	SystemIntercom      = "intercom"
)

// Maintenance kinds; only meaningful when the action is maintenance.
const (
	MaintenancePreventive = "preventive"
	MaintenanceCorrective = "corrective"
)

var QuotationStatuses = []string{
	QuotationStatusInQuotation,
	QuotationStatusApproved,
	QuotationStatusCancelled,
}

var BudgetStatuses = []string{
	BudgetStatusOpen,
	BudgetStatusInstalling,
	BudgetStatusDone,
	BudgetStatusCancelled,
}

var OrderStatuses = []string{
	OrderStatusScheduled,
	OrderStatusInProgress,
	OrderStatusDone,
	OrderStatusCancelled,
}

var ServiceActions = []string{ActionInstallation, ActionMaintenance, ActionRemoval}

var SecuritySystems = []string{
	SystemAlarm,
	SystemCCTV,
	SystemElectricFence,
	SystemAccessControl,
	SystemIntercom,
}

var MaintenanceKinds = []string{MaintenancePreventive, MaintenanceCorrective}

var quotationStatusLabels = map[string]string{
	QuotationStatusInQuotation: "Em cotação",
	QuotationStatusApproved:    "Aprovada",
	QuotationStatusCancelled:   "Cancelada",
}

var budgetStatusLabels = map[string]string{
	BudgetStatusOpen:       "Aberto",
	BudgetStatusInstalling: "Em instalação",
	BudgetStatusDone:       "Concluído",
	BudgetStatusCancelled:  "Cancelado",
}

var orderStatusLabels = map[string]string{
	OrderStatusScheduled:  "Agendada",
	OrderStatusInProgress: "Em andamento",
	OrderStatusDone:       "Concluída",
	OrderStatusCancelled:  "Cancelada",
}

var actionLabels = map[string]string{
	ActionInstallation: "Instalação",
	ActionMaintenance:  "Manutenção",
	ActionRemoval:      "Desinstalação",
}

var systemLabels = map[string]string{
	SystemAlarm:         "Alarme",
	SystemCCTV:          "CFTV",
	SystemElectricFence: "Cerca elétrica",
	SystemAccessControl: "Controle de acesso",
	SystemIntercom:      "Interfone",
}

var maintenanceLabels = map[string]string{
	MaintenancePreventive: "Preventiva",
	MaintenanceCorrective: "Corretiva",
}

func labelFor(m map[string]string, key string) string {
	if label, ok := m[key]; ok {
		return label
	}
	return key
}

func QuotationStatusLabel(status string) string { return labelFor(quotationStatusLabels, status) }
func BudgetStatusLabel(status string) string    { return labelFor(budgetStatusLabels, status) }
func OrderStatusLabel(status string) string     { return labelFor(orderStatusLabels, status) }
func ActionLabel(action string) string          { return labelFor(actionLabels, action) }
func SystemLabel(system string) string          { return labelFor(systemLabels, system) }
func MaintenanceLabel(kind string) string       { return labelFor(maintenanceLabels, kind) }

// ServiceLabel builds the human description of a service order's work:
// action, system and, for maintenance, the maintenance kind.
// Example: "Manutenção corretiva - CFTV".
func ServiceLabel(action, system, maintenanceKind string) string {
	label := ActionLabel(action)
	if action == ActionMaintenance && maintenanceKind != "" {
		switch maintenanceKind {
		case MaintenancePreventive:
			label = "Manutenção preventiva"
		case MaintenanceCorrective:
			label = "Manutenção corretiva"
		}
	}
	if system != "" {
		label += " - " + SystemLabel(system)
	}
	return label
}
