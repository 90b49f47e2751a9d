package edm

import (
	"fmt"
	"strconv"
	"strings"
)

func qualify(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + "." + name
}

// SplitQualifiedName splits "A.B.Name" into namespace "A.B" and name "Name".
func SplitQualifiedName(qn string) (namespace, name string) {
	i := strings.LastIndexByte(qn, '.')
	if i < 0 {
		return "", qn
	}
	return qn[:i], qn[i+1:]
}

// OperationKey identifies an operation overload.
type OperationKey struct {
	Namespace string
	Name      string
	Arity     int
}

func (k OperationKey) String() string {
	return fmt.Sprintf("%s/%d", qualify(k.Namespace, k.Name), k.Arity)
}

// ParseOperationKey parses keys in the form "NS.Name/2".
func ParseOperationKey(s string) (OperationKey, error) {
	qn, arity, ok := strings.Cut(s, "/")
	if !ok {
		return OperationKey{}, fmt.Errorf("operation key %q: missing /arity", s)
	}
	n, err := strconv.Atoi(arity)
	if err != nil || n < 0 {
		return OperationKey{}, fmt.Errorf("operation key %q: bad arity %q", s, arity)
	}
	ns, name := SplitQualifiedName(qn)
	return OperationKey{Namespace: ns, Name: name, Arity: n}, nil
}
