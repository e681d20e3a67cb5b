package accounts

import (
	"github.com/google/uuid"

	"github.com/gonzalo891751/contalivre-sub007/internal/code"
	"github.com/gonzalo891751/contalivre-sub007/internal/model"
)

// DefaultChart returns a starter chart of accounts: one header per
// rubric plus common postable leaves, including a contra asset.
func DefaultChart() []model.Account {
	b := chartBuilder{}

	activo := b.header("1", "Activo", model.KindAsset)
	b.leaf("1.01", "Caja", model.KindAsset, activo)
	b.leaf("1.02", "Banco Cuenta Corriente", model.KindAsset, activo)
	b.leaf("1.03", "Deudores por Ventas", model.KindAsset, activo)
	b.leaf("1.04", "Mercaderías", model.KindAsset, activo)
	b.leaf("1.05", "Rodados", model.KindAsset, activo)
	b.contra("1.06", "Depreciación Acumulada Rodados", model.KindAsset, activo)

	pasivo := b.header("2", "Pasivo", model.KindLiability)
	b.leaf("2.01", "Proveedores", model.KindLiability, pasivo)
	b.leaf("2.02", "Sueldos a Pagar", model.KindLiability, pasivo)

	pn := b.header("3", "Patrimonio Neto", model.KindEquity)
	b.leaf("3.01", "Capital Social", model.KindEquity, pn)

	ingresos := b.header("4", "Resultados Positivos", model.KindIncome)
	b.leaf("4.01", "Ventas", model.KindIncome, ingresos)

	egresos := b.header("5", "Resultados Negativos", model.KindExpense)
	b.leaf("5.01", "Costo de Mercaderías Vendidas", model.KindExpense, egresos)
	b.leaf("5.02", "Sueldos y Jornales", model.KindExpense, egresos)
	b.leaf("5.03", "Alquileres Perdidos", model.KindExpense, egresos)

	return b.accounts
}

type chartBuilder struct {
	accounts []model.Account
}

func (b *chartBuilder) add(a model.Account) string {
	a.ID = uuid.NewString()
	a.Level = code.Level(a.Code)
	b.accounts = append(b.accounts, a)
	return a.ID
}

func (b *chartBuilder) header(c, name string, kind model.Kind) string {
	return b.add(model.Account{
		Code:       c,
		Name:       name,
		Kind:       kind,
		NormalSide: model.DefaultNormalSide(kind),
		IsHeader:   true,
	})
}

func (b *chartBuilder) leaf(c, name string, kind model.Kind, parentID string) string {
	return b.add(model.Account{
		Code:       c,
		Name:       name,
		Kind:       kind,
		ParentID:   parentID,
		NormalSide: model.DefaultNormalSide(kind),
	})
}

func (b *chartBuilder) contra(c, name string, kind model.Kind, parentID string) string {
	return b.add(model.Account{
		Code:       c,
		Name:       name,
		Kind:       kind,
		ParentID:   parentID,
		NormalSide: model.DefaultNormalSide(kind).Opposite(),
		IsContra:   true,
	})
}
