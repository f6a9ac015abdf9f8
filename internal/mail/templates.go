package mail

import "fmt"

// Template email disederhanakan dari versi HTML penuh di client-facing
// deployment; isi kredensial sementara dan instruksi ganti password.

func WelcomeStaffHTML(name, email, temporaryPassword, clientURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2 style="color: #2563eb;">Welcome to the POS System</h2>
  <p>Hi %s,</p>
  <p>An account has been created for you. Use the credentials below to sign in:</p>
  <ul>
    <li>Email: <strong>%s</strong></li>
    <li>Temporary password: <strong>%s</strong></li>
  </ul>
  <p>You will be asked to change this password on first login.</p>
  <p><a href="%s" style="color: #2563eb;">Open the POS dashboard</a></p>
</body>
</html>`, name, email, temporaryPassword, clientURL)
}

func WelcomeStaffText(name, email, temporaryPassword string) string {
	return fmt.Sprintf("Hi %s,\n\nAn account has been created for you.\nEmail: %s\nTemporary password: %s\n\nChange this password on first login.\n", name, email, temporaryPassword)
}

func PasswordResetHTML(name, temporaryPassword, clientURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2 style="color: #2563eb;">Your password has been reset</h2>
  <p>Hi %s,</p>
  <p>An administrator reset your password. Your new temporary password:</p>
  <p><strong>%s</strong></p>
  <p>You will be asked to change it on your next login.</p>
  <p><a href="%s" style="color: #2563eb;">Open the POS dashboard</a></p>
</body>
</html>`, name, temporaryPassword, clientURL)
}

func PasswordResetText(name, temporaryPassword string) string {
	return fmt.Sprintf("Hi %s,\n\nAn administrator reset your password.\nNew temporary password: %s\n\nChange it on your next login.\n", name, temporaryPassword)
}
