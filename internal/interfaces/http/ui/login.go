// Package ui holds the embedded HTML shells served by the console. Each
// shell is a static page; all data arrives afterwards through the fragment
// endpoints and is swapped in by the page script.
package ui

// LoginPage is the sign-in shell.
const LoginPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>FraudLens · Sign in</title>
<style>
:root { --primary:#3b82f6; --danger:#ef4444; --bg:#0f172a; --card:#1e293b; --text:#e2e8f0; --gray:#94a3b8; }
* { margin:0; padding:0; box-sizing:border-box; font-family:'Segoe UI',system-ui,sans-serif; }
body { min-height:100vh; display:flex; align-items:center; justify-content:center; background:var(--bg); color:var(--text); }
.card { width:100%; max-width:380px; background:var(--card); border-radius:16px; padding:40px 32px; }
.card h1 { font-size:24px; margin-bottom:4px; }
.card p.sub { color:var(--gray); font-size:14px; margin-bottom:28px; }
label { display:block; font-size:13px; color:var(--gray); margin-bottom:6px; }
input { width:100%; padding:12px 14px; margin-bottom:18px; border:1px solid #334155; border-radius:8px; background:var(--bg); color:var(--text); font-size:14px; }
input:focus { outline:none; border-color:var(--primary); }
button { width:100%; padding:12px; border:none; border-radius:8px; background:var(--primary); color:white; font-size:15px; font-weight:600; cursor:pointer; }
button:disabled { opacity:.6; cursor:wait; }
.error { display:none; background:rgba(239,68,68,.12); border:1px solid var(--danger); color:var(--danger); border-radius:8px; padding:10px 14px; font-size:13px; margin-bottom:18px; }
.error.show { display:block; }
</style>
</head>
<body>
<div class="card">
    <h1>FraudLens</h1>
    <p class="sub">Transaction risk console</p>
    <div id="loginError" class="error"></div>
    <form id="loginForm">
        <label for="email">Email</label>
        <input type="email" id="email" autocomplete="username" required>
        <label for="password">Password</label>
        <input type="password" id="password" autocomplete="current-password" required>
        <button type="submit" id="loginBtn">Sign in</button>
    </form>
</div>
<script>
document.getElementById('loginForm').addEventListener('submit', async (e) => {
    e.preventDefault();
    const btn = document.getElementById('loginBtn');
    const errBox = document.getElementById('loginError');
    errBox.classList.remove('show');
    btn.disabled = true;

    try {
        const resp = await fetch('/auth/login', {
            method: 'POST',
            headers: { 'Content-Type': 'application/json' },
            body: JSON.stringify({
                email: document.getElementById('email').value,
                password: document.getElementById('password').value,
            }),
        });
        const body = await resp.json();
        if (body.success && body.data && body.data.redirect) {
            window.location.href = body.data.redirect;
            return;
        }
        errBox.textContent = (body.error && body.error.message) || 'Invalid credentials. Please try again.';
        errBox.classList.add('show');
    } catch (err) {
        errBox.textContent = 'Unable to reach the server. Please try again.';
        errBox.classList.add('show');
    } finally {
        btn.disabled = false;
    }
});
</script>
</body>
</html>
`
