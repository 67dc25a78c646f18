package folio

import "testing"

func TestLocalize(t *testing.T) {
	if got := Localize("zh-CN", "loginSuccess", nil); got != "登录成功" {
		t.Errorf("Localize(zh-CN, loginSuccess) = %q", got)
	}
	if got := Localize("en-US", "loginSuccess", nil); got != "Signed in successfully" {
		t.Errorf("Localize(en-US, loginSuccess) = %q", got)
	}
	// Unknown locale falls back to en-US, unknown key renders as itself.
	if got := Localize("fr-FR", "loginSuccess", nil); got != "Signed in successfully" {
		t.Errorf("Localize(fr-FR, loginSuccess) = %q, want the en-US fallback", got)
	}
	if got := Localize("en-US", "noSuchKey", nil); got != "noSuchKey" {
		t.Errorf("Localize(noSuchKey) = %q, want the key itself", got)
	}
}

func TestLocalizeParams(t *testing.T) {
	got := Localize("en-US", "targetDeltaOver", map[string]string{"value": "20"})
	if got != "Over by 20%" {
		t.Errorf("Localize(targetDeltaOver) = %q, want %q", got, "Over by 20%")
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := CategoryLabel("zh-CN", Crypto); got != "虚拟币" {
		t.Errorf("CategoryLabel(zh-CN, crypto) = %q", got)
	}
	if got := CategoryLabel("en-US", Unknown); got != "Uncategorized" {
		t.Errorf("CategoryLabel(en-US, unknown) = %q", got)
	}
}
