package recommendation

// FallbackRecommendations mengembalikan set rekomendasi statis saat kuota AI habis.
// Selalu salinan baru; isinya tidak bergantung pada request.
func FallbackRecommendations() []Recommendation {
	return []Recommendation{
		{Name: "Deep Learning", Type: "Course", Reason: "Rekomendasi Fallback (AI Quota Exceeded): Relevan dengan minat AI/Data."},
		{Name: "Network Security", Type: "Course", Reason: "Rekomendasi Fallback: Relevan dengan minat Security."},
		{Name: "Cloud Computing", Type: "Course", Reason: "Rekomendasi Fallback: Skill fundamental infrastruktur."},
	}
}
