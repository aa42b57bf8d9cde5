package testutil

import "github.com/leapstack-labs/pname/pkg/dictionary"

// SampleEntries returns a business-vocabulary dictionary used across tests.
// Each call returns a fresh map.
func SampleEntries() map[string][]string {
	return map[string][]string{
		"顧客":   {"customer", "client"},
		"注文":   {"order"},
		"商品":   {"product", "item"},
		"管理":   {"management", "admin"},
		"システム": {"system"},
		"情報":   {"information", "info"},
		"データ":  {"data"},
		"マスタ":  {"master"},
		"売上":   {"sales", "revenue"},
		"明細":   {"detail", "line"},
		"番号":   {"number", "no"},
		"コード":  {"code"},
		"名前":   {"name"},
		"名称":   {"name", "title"},
		"顧客管理": {"customer_management", "crm"},
		"商品管理": {"product_management"},
		"注文管理": {"order_management"},
		"日付":   {"date"},
		"時刻":   {"time"},
		"年月日":  {"date"},
		"金額":   {"amount", "price"},
		"数量":   {"quantity", "qty"},
	}
}

// SampleDictionary returns SampleEntries as a dictionary snapshot.
func SampleDictionary() *dictionary.Dictionary {
	return dictionary.New(SampleEntries())
}

// ScenarioDictionary returns the three-word dictionary used by the
// end-to-end generation scenarios.
func ScenarioDictionary() *dictionary.Dictionary {
	return dictionary.New(map[string][]string{
		"顧客":   {"customer", "client"},
		"管理":   {"management"},
		"システム": {"system"},
	})
}
