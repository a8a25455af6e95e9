// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package i18n holds the message catalog of the search view and exposes
// locale-aware printers built on golang.org/x/text/message.
//
// Message keys are the English texts. Japanese is the default locale.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	MsgNoResults         = "No matching maintenance records."
	MsgLoadFailed        = "An error occurred. Please try again."
	MsgConfirmDelete     = "Delete this maintenance record? This cannot be undone."
	MsgDeleteSucceeded   = "✅ Maintenance record deleted"
	MsgDeleteFailed      = "❌ Failed to delete"
	MsgResultCount       = "%d records"
	MsgMileage           = "%d km"
	MsgStatusDraft       = "Draft"
	MsgStatusCompleted   = "Completed"
	MsgStatusArchived    = "Archived"
	MsgStatusAny         = "All"
	MsgLoading           = "Loading..."
	MsgActionView        = "View"
	MsgActionEdit        = "Edit"
	MsgActionPDF         = "PDF export"
	MsgActionCustomer    = "Customer page"
	MsgActionDelete      = "Delete"
	MsgColumnDate        = "Inspection date"
	MsgColumnClient      = "Client"
	MsgColumnReg         = "Registration"
	MsgColumnModel       = "Car model"
	MsgColumnMileage     = "Mileage"
	MsgColumnStatus      = "Status"
	MsgColumnTags        = "Tags"
	MsgColumnActions     = "Actions"
	MsgFilterChassis     = "Chassis number"
	MsgSearch            = "Search"
	MsgClear             = "Clear"
	MsgConfirmYes        = "Delete"
	MsgConfirmNo         = "Cancel"
	MsgTitle             = "Maintenance records"
	MsgCopiedToClipboard = "Copied to clipboard: %s"
	MsgClipboardFailed   = "Clipboard unavailable: %s"
	MsgConfirmHint       = "y: delete    n / esc: cancel"
	MsgKeyHelp           = "tab: next field  ←/→: status  ↑/↓: select  enter: view  e: edit  p: PDF  o: customer page  ctrl+d: delete  ctrl+r: clear  ctrl+l: reload  ctrl+c: quit"
)

var japanese = map[string]string{
	MsgNoResults:         "該当する整備記録がありません",
	MsgLoadFailed:        "エラーが発生しました。再度お試しください。",
	MsgConfirmDelete:     "この整備記録を削除してもよろしいですか？\nこの操作は取り消せません。",
	MsgDeleteSucceeded:   "✅ 整備記録を削除しました",
	MsgDeleteFailed:      "❌ 削除に失敗しました",
	MsgResultCount:       "%d 件",
	MsgStatusDraft:       "下書き",
	MsgStatusCompleted:   "完了",
	MsgStatusArchived:    "アーカイブ",
	MsgStatusAny:         "すべて",
	MsgLoading:           "読み込み中...",
	MsgActionView:        "表示",
	MsgActionEdit:        "編集",
	MsgActionPDF:         "PDF出力",
	MsgActionCustomer:    "顧客ページ",
	MsgActionDelete:      "削除",
	MsgColumnDate:        "点検日",
	MsgColumnClient:      "顧客名",
	MsgColumnReg:         "車両番号",
	MsgColumnModel:       "車名",
	MsgColumnMileage:     "走行距離",
	MsgColumnStatus:      "ステータス",
	MsgColumnTags:        "タグ",
	MsgColumnActions:     "操作",
	MsgFilterChassis:     "車台番号",
	MsgSearch:            "検索",
	MsgClear:             "クリア",
	MsgConfirmYes:        "削除する",
	MsgConfirmNo:         "キャンセル",
	MsgTitle:             "整備記録一覧",
	MsgCopiedToClipboard: "クリップボードにコピーしました: %s",
	MsgClipboardFailed:   "クリップボードを利用できません: %s",
	MsgConfirmHint:       "y: 削除する    n / esc: キャンセル",
	MsgKeyHelp:           "tab: 次の項目  ←/→: ステータス  ↑/↓: 選択  enter: 表示  e: 編集  p: PDF  o: 顧客ページ  ctrl+d: 削除  ctrl+r: クリア  ctrl+l: 再読み込み  ctrl+c: 終了",
}

func init() {
	for key, msg := range japanese {
		_ = message.SetString(language.Japanese, key, msg)
	}
}

// Tag parses a configured locale, falling back to Japanese.
func Tag(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Japanese
	}

	switch base, _ := tag.Base(); base.String() {
	case "en":
		return language.English
	default:
		return language.Japanese
	}
}

// Printer returns a message printer for the given locale. It translates
// catalog keys and applies locale digit grouping to numeric verbs.
func Printer(locale string) *message.Printer {
	return message.NewPrinter(Tag(locale))
}
