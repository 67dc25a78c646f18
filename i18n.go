package folio

import "strings"

// translations carries the user-facing message tables. The keys are shared
// with the original web client so persisted locales and message keys stay
// interchangeable across client generations.
var translations = map[string]map[string]string{
	"zh-CN": {
		"loginSuccess":       "登录成功",
		"loginFailed":        "登录失败",
		"registerSuccess":    "注册成功，请登录",
		"registerFailed":     "注册失败",
		"logoutSuccess":      "已退出登录",
		"assetSaved":         "持仓已保存",
		"assetUpdated":       "持仓已更新",
		"saveFailed":         "保存失败",
		"assetDeleted":       "持仓已删除",
		"deleteFailed":       "删除失败",
		"requestFailed":      "请求失败",
		"invalidAsset":       "请输入有效的资产信息",
		"importSuccess":      "导入完成",
		"importFailed":       "导入失败",
		"assetNameError":     "请输入资产名称",
		"quantityError":      "数量需大于 0",
		"costError":          "买入总价需大于或等于 0",
		"currentPriceError":  "现价需大于或等于 0",
		"categoryStock":      "股票",
		"categoryCrypto":     "虚拟币",
		"categoryEtf":        "ETF",
		"categoryCash":       "现金",
		"categoryUnknown":    "未分类",
		"riskLow":            "低风险",
		"riskMedium":         "中风险",
		"riskHigh":           "高风险",
		"statAssets":         "资产数",
		"statTotalCost":      "总投入",
		"statMarketValue":    "市值",
		"statAverageCost":    "平均成本",
		"statUnrealized":     "浮动盈亏",
		"targetTotal":        "目标合计 {total}%",
		"targetDeltaOver":    "超配 {value}%",
		"targetDeltaUnder":   "低配 {value}%",
		"targetDeltaMatch":   "已接近目标",
		"budgetUsed":         "已投入 {value}",
		"budgetProgress":     "完成度 {value}",
		"budgetOver":         "已超过目标预算，请注意资金节奏。",
		"eventAdded":         "新增持仓",
		"eventUpdated":       "更新持仓",
		"eventDeleted":       "删除持仓",
		"eventImported":      "批量导入",
		"timelineEmpty":      "还没有操作记录",
		"emptyState":         "暂无资产，先添加一笔持仓吧。",
		"emptyStateFiltered": "没有匹配的资产，请调整筛选条件。",
		"presetEmpty":        "还没有保存视图",
	},
	"en-US": {
		"loginSuccess":       "Signed in successfully",
		"loginFailed":        "Login failed",
		"registerSuccess":    "Registration successful. Please sign in.",
		"registerFailed":     "Registration failed",
		"logoutSuccess":      "Signed out",
		"assetSaved":         "Holding saved",
		"assetUpdated":       "Holding updated",
		"saveFailed":         "Save failed",
		"assetDeleted":       "Holding deleted",
		"deleteFailed":       "Delete failed",
		"requestFailed":      "Request failed",
		"invalidAsset":       "Please enter valid asset information",
		"importSuccess":      "Import complete",
		"importFailed":       "Import failed",
		"assetNameError":     "Please enter an asset name",
		"quantityError":      "Quantity must be greater than 0",
		"costError":          "Total cost must be at least 0",
		"currentPriceError":  "Current price must be at least 0",
		"categoryStock":      "Stocks",
		"categoryCrypto":     "Crypto",
		"categoryEtf":        "ETF",
		"categoryCash":       "Cash",
		"categoryUnknown":    "Uncategorized",
		"riskLow":            "Low risk",
		"riskMedium":         "Medium risk",
		"riskHigh":           "High risk",
		"statAssets":         "Assets",
		"statTotalCost":      "Total invested",
		"statMarketValue":    "Market value",
		"statAverageCost":    "Average cost",
		"statUnrealized":     "Unrealized P/L",
		"targetTotal":        "Targets total {total}%",
		"targetDeltaOver":    "Over by {value}%",
		"targetDeltaUnder":   "Under by {value}%",
		"targetDeltaMatch":   "On target",
		"budgetUsed":         "Invested {value}",
		"budgetProgress":     "Progress {value}",
		"budgetOver":         "You have exceeded your target budget.",
		"eventAdded":         "Added holding",
		"eventUpdated":       "Updated holding",
		"eventDeleted":       "Deleted holding",
		"eventImported":      "Bulk import",
		"timelineEmpty":      "No events yet",
		"emptyState":         "No assets yet. Add your first holding.",
		"emptyStateFiltered": "No matching holdings. Update your filters to see results.",
		"presetEmpty":        "No saved views yet",
	},
}

// Localize resolves a message key in the given locale, interpolating
// {param} placeholders. Unknown locales fall back to en-US and unknown
// keys render as the key itself, so a missing translation degrades
// visibly instead of failing.
func Localize(locale, key string, params map[string]string) string {
	dict, ok := translations[locale]
	if !ok {
		dict = translations["en-US"]
	}
	text, ok := dict[key]
	if !ok {
		text = key
	}
	for param, value := range params {
		text = strings.ReplaceAll(text, "{"+param+"}", value)
	}
	return text
}

// CategoryLabel returns the localized display label of a category.
func CategoryLabel(locale string, c Category) string {
	switch c {
	case Stock:
		return Localize(locale, "categoryStock", nil)
	case Crypto:
		return Localize(locale, "categoryCrypto", nil)
	case ETF:
		return Localize(locale, "categoryEtf", nil)
	case Cash:
		return Localize(locale, "categoryCash", nil)
	default:
		return Localize(locale, "categoryUnknown", nil)
	}
}

func isChinese(locale string) bool {
	return strings.HasPrefix(strings.ToLower(locale), "zh")
}
