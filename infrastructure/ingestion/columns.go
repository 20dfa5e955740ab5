package ingestion

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ColumnMatcher localiza as colunas de data e receita a partir de listas de
// candidatos em ordem de prioridade. O primeiro candidato presente no cabeçalho vence.
type ColumnMatcher struct {
	DateCandidates    []string
	RevenueCandidates []string
}

func DefaultColumnMatcher() ColumnMatcher {
	return ColumnMatcher{
		DateCandidates: []string{
			"data", "date", "dt", "dt_venda", "data venda", "data de venda", "data da venda",
		},
		RevenueCandidates: []string{
			"receita", "revenue", "valor", "value", "vl_receita", "vl_total",
			"valor total", "valor da venda", "total",
		},
	}
}

// Match retorna os índices das colunas de data e receita no cabeçalho
func (m ColumnMatcher) Match(header []string) (dateIdx, revenueIdx int, ok bool) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := NormalizeHeader(h)
		if _, exists := index[key]; !exists && key != "" {
			index[key] = i
		}
	}

	dateIdx = lookup(index, m.DateCandidates)
	revenueIdx = lookup(index, m.RevenueCandidates)
	if dateIdx < 0 || revenueIdx < 0 || dateIdx == revenueIdx {
		return -1, -1, false
	}
	return dateIdx, revenueIdx, true
}

func lookup(index map[string]int, candidates []string) int {
	for _, c := range candidates {
		if i, ok := index[NormalizeHeader(c)]; ok {
			return i
		}
	}
	return -1
}

var folder = cases.Fold()

// NormalizeHeader remove acentos, ignora caixa e colapsa espaços
func NormalizeHeader(h string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, h)
	if err != nil {
		stripped = h
	}
	return strings.Join(strings.Fields(folder.String(stripped)), " ")
}
