package client

// Op - операция дашборда, для которой показывается уведомление
type Op string

const (
	OpLogin          Op = "login"
	OpLoadRecords    Op = "records.load"
	OpCreateRecord   Op = "records.create"
	OpUpdateRecord   Op = "records.update"
	OpDeleteRecord   Op = "records.delete"
	OpListImages     Op = "images.list"
	OpUploadImage    Op = "images.upload"
	OpDeleteImage    Op = "images.delete"
	OpListEmployees  Op = "employees.list"
	OpCreateEmployee Op = "employees.create"
	OpUpdateEmployee Op = "employees.update"
	OpDeleteEmployee Op = "employees.delete"
)

const sessionExpiredText = "Sizda ruxsat yo'q yoki sessiya muddati tugagan!"

var notifications = map[Op]struct{ ok, fail string }{
	OpLogin:          {"Login successful!", "Login failed. Please try again."},
	OpLoadRecords:    {"", "Ma'lumotlarni yuklashda xatolik yuz berdi!"},
	OpCreateRecord:   {"Ma'lumot muvaffaqiyatli qo'shildi!", "Ma'lumot qo'shishda xatolik yuz berdi!"},
	OpUpdateRecord:   {"Ma'lumot muvaffaqiyatli yangilandi!", "Ma'lumotni yangilashda xatolik yuz berdi!"},
	OpDeleteRecord:   {"Ma'lumot muvaffaqiyatli o'chirildi!", "Ma'lumotni o'chirishda xatolik yuz berdi!"},
	OpListImages:     {"", "Rasmlarni yuklashda xatolik yuz berdi!"},
	OpUploadImage:    {"Rasm muvaffaqiyatli yuklandi!", "Rasmni yuklashda xatolik yuz berdi!"},
	OpDeleteImage:    {"Rasm muvaffaqiyatli o'chirildi!", "Rasmni o'chirishda xatolik yuz berdi!"},
	OpListEmployees:  {"", "Xodimlar ro'yxatini yuklashda xatolik yuz berdi!"},
	OpCreateEmployee: {"Xodim muvaffaqiyatli qo'shildi!", "Xodim qo'shishda xatolik yuz berdi!"},
	OpUpdateEmployee: {"Xodim muvaffaqiyatli yangilandi!", "Xodimni yangilashda xatolik yuz berdi!"},
	OpDeleteEmployee: {"Xodim muvaffaqiyatli o'chirildi!", "Xodimni o'chirishda xatolik yuz berdi!"},
}

// Success - текст уведомления об успехе, пустой для операций чтения
func (o Op) Success() string {
	return notifications[o].ok
}

// Failure - общий текст ошибки, если сервер не прислал свой
func (o Op) Failure() string {
	if n, ok := notifications[o]; ok {
		return n.fail
	}
	return "Xatolik yuz berdi!"
}
