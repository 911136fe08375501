package domain

var (
	LESSON_GENERATE_SUCCESS = "Berhasil generate pelajaran"
	LESSON_GENERATE_FAILED  = "Gagal generate pelajaran"
	LESSON_GET_SUCCESS      = "Berhasil mendapatkan pelajaran"
	LESSON_GET_FAILED       = "Gagal mendapatkan pelajaran"

	PLAYBACK_CREATE_SUCCESS = "Berhasil membuat sesi pemutaran"
	PLAYBACK_CREATE_FAILED  = "Gagal membuat sesi pemutaran"
	PLAYBACK_TICK_SUCCESS   = "Berhasil evaluasi waktu pemutaran"
	PLAYBACK_TICK_FAILED    = "Gagal evaluasi waktu pemutaran"
	PLAYBACK_IMAGE_SUCCESS  = "Berhasil mengganti gambar"
	PLAYBACK_IMAGE_FAILED   = "Gagal mengganti gambar"

	QUIZ_GENERATE_SUCCESS = "Berhasil generate kuis"
	QUIZ_GENERATE_FAILED  = "Gagal generate kuis"
	QUIZ_ANSWER_SUCCESS   = "Berhasil submit jawaban"
	QUIZ_ANSWER_FAILED    = "Gagal submit jawaban"
	QUIZ_NEXT_SUCCESS     = "Berhasil lanjut ke pertanyaan berikutnya"
	QUIZ_NEXT_FAILED      = "Gagal lanjut ke pertanyaan berikutnya"
	QUIZ_RETRY_SUCCESS    = "Berhasil mengulang kuis"
	QUIZ_RETRY_FAILED     = "Gagal mengulang kuis"

	SANDBOX_GENERATE_SUCCESS    = "Berhasil generate sandbox"
	SANDBOX_GENERATE_FAILED     = "Gagal generate sandbox"
	SANDBOX_PLACE_SUCCESS       = "Berhasil menaruh potongan"
	SANDBOX_PLACE_FAILED        = "Gagal menaruh potongan"
	SANDBOX_REMOVE_SUCCESS      = "Berhasil mengambil potongan"
	SANDBOX_REMOVE_FAILED       = "Gagal mengambil potongan"
	SANDBOX_COMBINE_SUCCESS     = "Berhasil memeriksa kombinasi"
	SANDBOX_COMBINE_FAILED      = "Gagal memeriksa kombinasi"
	SANDBOX_DECONSTRUCT_SUCCESS = "Berhasil mengurai potongan"
	SANDBOX_DECONSTRUCT_FAILED  = "Gagal mengurai potongan"
	SANDBOX_RESET_SUCCESS       = "Berhasil mengulang sandbox"
	SANDBOX_RESET_FAILED        = "Gagal mengulang sandbox"
	SANDBOX_ADVANCE_SUCCESS     = "Berhasil membuka level berikutnya"
	SANDBOX_ADVANCE_FAILED      = "Gagal membuka level berikutnya"

	TEACHING_START_SUCCESS      = "Berhasil memulai tantangan mengajar"
	TEACHING_START_FAILED       = "Gagal memulai tantangan mengajar"
	TEACHING_EXPLAIN_SUCCESS    = "Berhasil mengirim penjelasan"
	TEACHING_EXPLAIN_FAILED     = "Gagal mengirim penjelasan"
	TEACHING_TRANSCRIPT_SUCCESS = "Berhasil mendapatkan riwayat percakapan"
	TEACHING_TRANSCRIPT_FAILED  = "Gagal mendapatkan riwayat percakapan"
)
