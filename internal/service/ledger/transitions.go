package ledger

import "swiftship/internal/entities"

// next - прямой порядок жизненного цикла посылки.
var next = map[entities.ParcelStatusType]entities.ParcelStatusType{
	entities.StatusPending:        entities.StatusPickedUp,
	entities.StatusPickedUp:       entities.StatusInTransit,
	entities.StatusInTransit:      entities.StatusOutForDelivery,
	entities.StatusOutForDelivery: entities.StatusDelivered,
}

// canTransition разрешает только шаг вперёд по жизненному циклу;
// failed достижим из любого нетерминального статуса, delivered и
// failed терминальны. Откаты и перескоки запрещены.
func canTransition(from, to entities.ParcelStatusType) bool {
	if from.IsTerminal() {
		return false
	}
	if to == entities.StatusFailed {
		return true
	}
	return next[from] == to
}

func isValidStatus(status entities.ParcelStatusType) bool {
	switch status {
	case entities.StatusPending,
		entities.StatusPickedUp,
		entities.StatusInTransit,
		entities.StatusOutForDelivery,
		entities.StatusDelivered,
		entities.StatusFailed:
		return true
	default:
		return false
	}
}
