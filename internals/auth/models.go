package auth

type User struct {
	Username   string `json:"username" gorm:"primaryKey;size:50"`
	MailID     string `json:"mail_id" gorm:"size:100;not null;unique"`
	Password   string `json:"-" gorm:"size:100;not null"`
	ProfilePic string `json:"profile_pic" gorm:"size:100"`
}

type LoginRequestBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignUpRequestBody struct {
	Username string `json:"username"`
	MailID   string `json:"mail_id"`
	Password string `json:"password"`
}
