package mysql

import (
	"errors"
	"strings"

	driver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cldprgm/Network-vibe/domain"
)

// updateBatchSize bounds the number of WHEN arms of a single bulk update statement
const updateBatchSize = 500

const mysqlErrDupEntry = 1062

// caseExpr builds `CASE id WHEN ? THEN ? ... ELSE <column> END` for rows [0, n).
func caseExpr(column string, n int, arm func(i int) (id int64, value any)) clause.Expr {
	var sb strings.Builder
	args := make([]any, 0, 2*n)
	sb.WriteString("CASE id")
	for i := range n {
		id, v := arm(i)
		sb.WriteString(" WHEN ? THEN ?")
		args = append(args, id, v)
	}
	sb.WriteString(" ELSE ")
	sb.WriteString(column)
	sb.WriteString(" END")
	return gorm.Expr(sb.String(), args...)
}

// batches splits [0, n) into consecutive ranges of at most size
func batches(n, size int) [][2]int {
	var out [][2]int
	for start := 0; start < n; start += size {
		out = append(out, [2]int{start, min(start+size, n)})
	}
	return out
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *driver.MySQLError
	return errors.As(err, &me) && me.Number == mysqlErrDupEntry
}

// notFound maps gorm's missing-row error to the domain one
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
