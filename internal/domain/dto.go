package domain

import "github.com/fsdevblog/geldbetrag/pkg/money"

type OperationType string

const (
	OperationParse   OperationType = "parse"
	OperationCents   OperationType = "cents"
	OperationAdd     OperationType = "add"
	OperationSum     OperationType = "sum"
	OperationDiff    OperationType = "diff"
	OperationSub     OperationType = "sub"
	OperationMul     OperationType = "mul"
	OperationCmp     OperationType = "cmp"
	OperationDecimal OperationType = "decimal"
)

// CalculationResult результат одной операции. Заполнено ровно одно из полей
// Amount, Compare, Decimal.
type CalculationResult struct {
	Operation OperationType `json:"operation"`
	Amount    *money.Amount `json:"amount,omitempty"`
	Compare   *int          `json:"compare,omitempty"`
	Decimal   string        `json:"decimal,omitempty"`
}
