package postgres

import (
	"database/sql"
	"strings"

	"vet-clinic/internal/platform/apperr"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SQLSTATE de integridad que se traducen a 400.
const (
	codeNotNull    = "23502"
	codeForeignKey = "23503"
	codeUnique     = "23505"
	codeCheck      = "23514"
)

// Entidad referenciada por cada columna FK.
var fkEntity = map[string]string{
	"owner_id":     "Owner",
	"pet_id":       "Pet",
	"staff_id":     "Staff",
	"treatment_id": "Treatment",
}

var title = cases.Title(language.English)

// mapError traduce errores del driver a apperr. entity se usa para el 404.
func mapError(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.Wrap(apperr.KindNotFound, entity+" not found", err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return errors.WithStack(err)
	}

	switch pgErr.Code {
	case codeForeignKey:
		return apperr.Wrap(apperr.KindValidation, referenced(pgErr)+" does not exist", err)
	case codeUnique:
		if pgErr.TableName == "pet_treatments" {
			return apperr.Wrap(apperr.KindValidation, "treatment is already linked to this pet", err)
		}
		return apperr.Wrap(apperr.KindValidation, humanize(pgErr.TableName)+" already exists", err)
	case codeNotNull:
		return apperr.Wrap(apperr.KindValidation, pgErr.ColumnName+" is required", err)
	case codeCheck:
		if pgErr.ConstraintName == "billings_amount_check" {
			return apperr.Wrap(apperr.KindValidation, "amount must be greater than or equal to 0", err)
		}
		return apperr.Wrap(apperr.KindValidation, humanize(pgErr.ConstraintName)+" failed", err)
	}

	return errors.Wrapf(err, "postgres %s", pgErr.Code)
}

// referenced saca la columna del nombre de la constraint ("pets_owner_id_fkey").
func referenced(pgErr *pgconn.PgError) string {
	name := strings.TrimSuffix(pgErr.ConstraintName, "_fkey")
	name = strings.TrimPrefix(name, pgErr.TableName+"_")
	if e, ok := fkEntity[name]; ok {
		return e
	}
	return humanize(strings.TrimSuffix(name, "_id"))
}

// humanize: "pet_treatments" => "Pet Treatments".
func humanize(s string) string {
	return title.String(strings.ReplaceAll(s, "_", " "))
}
