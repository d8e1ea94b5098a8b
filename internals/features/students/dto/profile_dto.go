package dto

import (
	"mahasiswa_backend/internals/features/students/model"
)

type ProfileResponse struct {
	Nama         string         `json:"nama"`
	NIM          string         `json:"nim"`
	EmailSSO     string         `json:"email_sso"`
	Jurusan      string         `json:"jurusan"`
	Fakultas     string         `json:"fakultas"`
	Angkatan     int            `json:"angkatan"`
	Semester     int            `json:"semester"`
	IPK          float64        `json:"ipk"`
	SKSCompleted int            `json:"sks_completed"`
	TAK          int            `json:"tak"`
	IKK          float64        `json:"ikk"`
	SKSTingkat   map[string]any `json:"sks_tingkat"`
	IPTingkat    map[string]any `json:"ip_tingkat"`
}

type MenuItem struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Endpoint string `json:"endpoint"`
}

type MainMenuResponse struct {
	Profile ProfileResponse `json:"profile"`
	Menus   []MenuItem      `json:"menus"`
}

// MainMenus adalah daftar menu tetap di halaman utama.
// Endpoint simulasi milik modul simulasi IPK yang terpisah; service ini tidak memasangnya.
func MainMenus() []MenuItem {
	return []MenuItem{
		{ID: "home", Label: "Home", Endpoint: "/api/menu"},
		{ID: "interest", Label: "Integrasi Minat & Karir", Endpoint: "/api/interests"},
		{ID: "simulation", Label: "Simulasi IPK", Endpoint: "/api/simulation/calculate"},
	}
}

func ToProfileResponse(s *model.StudentModel, semester int) ProfileResponse {
	return ProfileResponse{
		Nama:         s.Nama,
		NIM:          s.NIM,
		EmailSSO:     s.EmailSSO,
		Jurusan:      s.Jurusan,
		Fakultas:     s.Fakultas,
		Angkatan:     s.Angkatan,
		Semester:     semester,
		IPK:          s.IPK,
		SKSCompleted: s.SKSTotal,
		TAK:          s.TAK,
		IKK:          s.IKK,
		SKSTingkat:   jsonMapOrEmpty(s.SKSTingkat),
		IPTingkat:    jsonMapOrEmpty(s.IPTingkat),
	}
}

func jsonMapOrEmpty(m map[string]interface{}) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
