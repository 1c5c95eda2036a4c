package postgres

import (
	"errors"
	"strings"
	"unicode"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ignaciodev/inventario-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint
// único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}

// mapLockError traduce los errores de espera de lock de PostgreSQL al error
// de dominio reintentable. 55P03 = lock_not_available (lock_timeout vencido).
func mapLockError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "55P03" {
		return domain.ErrLockTimeout
	}
	return err
}

// searchPatterns genera los patrones ILIKE para una búsqueda: el término tal
// cual y su versión sin acentos, para que "almacén" y "almacen" encuentren
// lo mismo.
func searchPatterns(term string) []string {
	term = strings.TrimSpace(term)
	folded := foldAccents(term)
	patterns := []string{"%" + term + "%"}
	if folded != term {
		patterns = append(patterns, "%"+folded+"%")
	}
	return patterns
}

// foldAccents elimina las marcas diacríticas (NFD + drop Mn + NFC).
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
