package money

import "cmp"

// Equal сообщает, равны ли суммы.
func (a Amount) Equal(b Amount) bool {
	return a.cents == b.cents
}

// Equals сравнивает сумму с произвольным значением. Для значений другого типа
// и для nil-указателя возвращает false.
func (a Amount) Equals(other any) bool {
	switch o := other.(type) {
	case Amount:
		return a.Equal(o)
	case *Amount:
		return o != nil && a.Equal(*o)
	default:
		return false
	}
}

// Hash согласован с Equal: равные суммы дают одинаковый хэш.
func (a Amount) Hash() int64 {
	return a.cents
}

// Compare возвращает -1, 0 или +1, если a меньше, равна или больше b.
func (a Amount) Compare(b Amount) int {
	return cmp.Compare(a.cents, b.cents)
}

// Compare то же, что a.Compare(b). Подходит для slices.SortFunc.
func Compare(a, b Amount) int {
	return a.Compare(b)
}

func (a Amount) Less(b Amount) bool {
	return a.cents < b.cents
}

func (a Amount) Greater(b Amount) bool {
	return a.cents > b.cents
}
