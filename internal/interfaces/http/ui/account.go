package ui

// AccountPage is the end-user console shell: the personal dashboard and the
// new-transaction form.
const AccountPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>FraudLens · My Account</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.0/dist/chart.umd.min.js"></script>
<style>
:root { --primary:#3b82f6; --success:#10b981; --warning:#f59e0b; --danger:#ef4444;
        --bg:#0f172a; --card:#1e293b; --dark-card:#0f172a; --line:#334155; --text:#e2e8f0; --gray:#94a3b8; --white:#f8fafc; }
* { margin:0; padding:0; box-sizing:border-box; font-family:'Segoe UI',system-ui,sans-serif; }
body { background:var(--bg); color:var(--text); display:flex; min-height:100vh; }
.sidebar { width:230px; background:var(--card); padding:24px 16px; display:flex; flex-direction:column; flex-shrink:0; }
.brand { font-size:20px; font-weight:700; margin-bottom:32px; padding-left:8px; }
.nav-item { padding:11px 14px; border-radius:8px; color:var(--gray); text-decoration:none; font-size:14px; margin-bottom:4px; cursor:pointer; display:block; }
.nav-item:hover { background:rgba(59,130,246,.08); color:var(--text); }
.nav-item.active { background:var(--primary); color:white; }
.user-box { margin-top:auto; display:flex; align-items:center; gap:10px; padding:10px 8px; border-top:1px solid var(--line); }
.avatar { width:36px; height:36px; border-radius:50%; background:var(--primary); display:flex; align-items:center; justify-content:center; font-weight:700; }
.main { flex:1; padding:28px 32px; }
.topbar { display:flex; justify-content:space-between; align-items:center; margin-bottom:24px; }
.topbar h2 { font-size:22px; }
.btn { padding:9px 16px; border:none; border-radius:8px; font-size:13px; font-weight:600; cursor:pointer; }
.btn-primary { background:var(--primary); color:white; }
.btn-ghost { background:transparent; color:var(--gray); border:1px solid var(--line); }
.page-content { display:none; }
.page-content.active { display:block; }
.welcome { background:linear-gradient(120deg, rgba(59,130,246,.25), rgba(16,185,129,.15)); border-radius:12px; padding:22px; margin-bottom:20px; }
.dash-grid { display:grid; grid-template-columns:280px 1fr; gap:20px; margin-bottom:20px; }
.panel { background:var(--card); border-radius:12px; padding:20px; margin-bottom:20px; }
.panel h4 { font-size:15px; margin-bottom:14px; }
.trust-ring { display:flex; flex-direction:column; align-items:center; }
.trust-ring svg { transform:rotate(-90deg); }
.trust-ring .score { font-size:34px; font-weight:700; margin-top:-110px; margin-bottom:78px; }
.stat-row { display:grid; grid-template-columns:repeat(auto-fit,minmax(150px,1fr)); gap:14px; }
.stat-card { background:var(--dark-card); border-radius:10px; padding:16px; }
.stat-card .label { color:var(--gray); font-size:12px; margin-bottom:4px; }
.stat-card .value { font-size:22px; font-weight:700; }
.chart-box { position:relative; height:280px; }
table { width:100%; border-collapse:collapse; font-size:13px; }
th { text-align:left; color:var(--gray); font-weight:600; padding:10px 12px; border-bottom:1px solid var(--line); }
td { padding:10px 12px; border-bottom:1px solid rgba(51,65,85,.5); }
.loading { text-align:center; color:var(--gray); padding:24px; }
.badge-status { padding:3px 10px; border-radius:12px; font-size:11px; font-weight:600; text-transform:capitalize; }
.badge-low { background:rgba(59,130,246,.15); color:var(--primary); }
.badge-medium { background:rgba(245,158,11,.15); color:var(--warning); }
.badge-high { background:rgba(249,115,22,.15); color:#f97316; }
.badge-critical { background:rgba(239,68,68,.15); color:var(--danger); }
.status-open { background:rgba(245,158,11,.15); color:var(--warning); }
.status-closed { background:rgba(16,185,129,.15); color:var(--success); }
.status-active { background:rgba(16,185,129,.15); color:var(--success); }
.status-inactive { background:rgba(239,68,68,.15); color:var(--danger); }
.status-pending { background:rgba(148,163,184,.15); color:var(--gray); }
.txn-type { font-weight:600; }
input, select { padding:10px 12px; border:1px solid var(--line); border-radius:8px; background:var(--bg); color:var(--text); font-size:13px; width:100%; }
input:focus, select:focus { outline:none; border-color:var(--primary); }
.form-grid { display:grid; grid-template-columns:repeat(auto-fit,minmax(200px,1fr)); gap:14px; margin-bottom:18px; }
.form-grid label { display:block; font-size:12px; color:var(--gray); margin-bottom:5px; }
.result-grid { display:grid; gap:24px; }
.result-headline { text-align:center; padding:24px; border-radius:12px; border:2px solid var(--line); }
.result-headline h3 { font-size:48px; font-weight:700; margin-bottom:8px; }
.result-caption { color:var(--gray); text-transform:uppercase; font-size:14px; font-weight:600; letter-spacing:1px; }
.result-level { display:inline-block; padding:6px 16px; color:white; border-radius:20px; font-weight:600; text-transform:uppercase; margin-top:12px; }
.result-metrics { display:grid; grid-template-columns:repeat(auto-fit,minmax(200px,1fr)); gap:16px; }
.result-metric { padding:20px; background:var(--dark-card); border-radius:12px; }
.metric-label { color:var(--gray); font-size:13px; margin-bottom:4px; }
.metric-value { font-size:24px; font-weight:700; color:var(--white); }
.loader-overlay { display:none; position:fixed; inset:0; background:rgba(15,23,42,.75); align-items:center; justify-content:center; z-index:60; }
.loader-overlay.show { display:flex; }
.spinner { width:48px; height:48px; border:4px solid var(--line); border-top-color:var(--primary); border-radius:50%; animation:spin 1s linear infinite; }
@keyframes spin { to { transform:rotate(360deg); } }
.toast-stack { position:fixed; top:20px; right:20px; z-index:100; display:flex; flex-direction:column; gap:8px; }
.toast { padding:12px 18px; border-radius:8px; color:white; font-size:13px; min-width:240px; }
.toast.success { background:var(--success); } .toast.error { background:var(--danger); }
.toast.warning { background:var(--warning); } .toast.info { background:var(--primary); }
</style>
</head>
<body data-initial-page="">
<aside class="sidebar">
    <div class="brand">FraudLens</div>
    <a class="nav-item active" data-page="dashboard">My Dashboard</a>
    <a class="nav-item" data-page="new-transaction">New Transaction</a>
    <div class="user-box">
        <div class="avatar" id="userInitials">U</div>
        <div style="flex:1;"><div id="userName" style="font-size:14px;">User</div></div>
        <button class="btn btn-ghost" id="logoutBtn">Exit</button>
    </div>
</aside>
<main class="main">
    <div class="topbar">
        <h2 id="pageTitle">Dashboard</h2>
        <button class="btn btn-ghost" id="refreshBtn">Refresh</button>
    </div>

    <div class="page-content active" id="dashboardPage">
        <div class="welcome"><h3>Welcome back<span id="welcomeName"></span></h3>
            <p style="color:var(--gray); font-size:14px; margin-top:4px;">Your transaction risk profile at a glance.</p></div>
        <div class="dash-grid">
            <div class="panel trust-ring">
                <h4>Trust Score</h4>
                <svg width="160" height="160">
                    <circle cx="80" cy="80" r="64" stroke="#334155" stroke-width="10" fill="none"/>
                    <circle id="trustProgressCircle" cx="80" cy="80" r="64" stroke="#10b981" stroke-width="10" fill="none"
                            stroke-linecap="round" stroke-dasharray="402" stroke-dashoffset="402"/>
                </svg>
                <div class="score" id="trustScoreValue">--</div>
            </div>
            <div>
                <div class="stat-row">
                    <div class="stat-card"><div class="label">Balance</div><div class="value" id="balanceValue">--</div></div>
                    <div class="stat-card"><div class="label">Avg Amount</div><div class="value" id="avgAmount">--</div></div>
                    <div class="stat-card"><div class="label">Avg Risk</div><div class="value" id="avgRiskScore">--</div></div>
                    <div class="stat-card"><div class="label">High Risk Txns</div><div class="value" id="highRiskCount">--</div></div>
                    <div class="stat-card"><div class="label">Total Txns</div><div class="value" id="totalTxnCount">--</div></div>
                </div>
                <div class="panel" style="margin-top:14px;"><h4>Risk Trend</h4><div class="chart-box"><canvas id="riskTrendChart"></canvas></div></div>
            </div>
        </div>
        <div class="panel">
            <h4>Recent Transactions</h4>
            <table>
                <thead><tr><th>Txn</th><th>Type</th><th>Amount</th><th>Channel</th><th>Risk</th><th>When</th></tr></thead>
                <tbody id="recentTxBody"><tr><td colspan="6" class="loading">Loading...</td></tr></tbody>
            </table>
        </div>
        <div class="panel">
            <h4>Recent Alerts</h4>
            <table>
                <thead><tr><th>Alert</th><th>Level</th><th>Score</th><th>Status</th><th>When</th></tr></thead>
                <tbody id="recentAlertBody"><tr><td colspan="5" class="loading">Loading...</td></tr></tbody>
            </table>
        </div>
    </div>

    <div class="page-content" id="new-transactionPage">
        <div class="panel">
            <h4>Submit a Transaction</h4>
            <form id="transactionForm">
                <div class="form-grid">
                    <div><label>Amount</label><input name="amount" type="number" step="0.01" min="0.01" required></div>
                    <div><label>Channel</label>
                        <select name="channel" required>
                            <option value="UPI">UPI</option><option value="card">Card</option>
                            <option value="netbanking">Netbanking</option><option value="atm">ATM</option>
                        </select></div>
                    <div><label>Type</label>
                        <select name="txnType">
                            <option value="WITHDRAW">Withdraw</option><option value="DEPOSIT">Deposit</option>
                            <option value="TRANSFER">Transfer</option><option value="PAYMENT">Payment</option>
                        </select></div>
                    <div><label>Currency</label><input name="currency" placeholder="INR"></div>
                    <div><label>Merchant Type</label><input name="merchantType" placeholder="Optional"></div>
                    <div><label>City</label><input name="city" placeholder="Optional"></div>
                    <div><label>Country</label><input name="country" placeholder="Optional"></div>
                    <div><label>Latitude</label><input name="latitude" type="number" step="any" placeholder="Optional"></div>
                    <div><label>Longitude</label><input name="longitude" type="number" step="any" placeholder="Optional"></div>
                    <div><label>Device Type</label><input name="deviceType" placeholder="Optional"></div>
                    <div><label>Device OS</label><input name="deviceOS" placeholder="Optional"></div>
                </div>
                <button class="btn btn-primary" type="submit">Process Transaction</button>
                <button class="btn btn-ghost" type="button" id="resetForm">Reset</button>
            </form>
        </div>
        <div class="panel" id="resultCard" style="display:none;">
            <div style="display:flex; justify-content:space-between; margin-bottom:14px;">
                <h4>Scoring Result</h4>
                <button class="btn btn-ghost" id="closeResult">Close</button>
            </div>
            <div id="resultContent"></div>
        </div>
    </div>
</main>

<div class="loader-overlay" id="loaderOverlay"><div class="spinner"></div></div>
<div class="toast-stack" id="toastStack"></div>

<script>
let currentPage = 'dashboard';
let riskChart = null;

async function apiCall(path, options = {}) {
    const resp = await fetch(path, {
        credentials: 'same-origin',
        ...options,
        headers: { 'Content-Type': 'application/json', 'X-Fragment-Request': '1', ...(options.headers || {}) },
    });
    if (resp.status === 401) {
        window.location.href = '/login';
        throw new Error('Unauthorized');
    }
    const body = await resp.json();
    (body.notices || []).forEach(n => showNotification(n.message, n.level));
    if (!body.success) {
        throw new Error((body.error && body.error.message) || 'Request failed');
    }
    return body.data || {};
}

function showNotification(message, type = 'info') {
    const toast = document.createElement('div');
    toast.className = 'toast ' + type;
    toast.textContent = message;
    document.getElementById('toastStack').appendChild(toast);
    setTimeout(() => toast.remove(), 4000);
}

function navigateToPage(page) {
    currentPage = page;
    document.querySelectorAll('.nav-item').forEach(i => i.classList.toggle('active', i.dataset.page === page));
    document.querySelectorAll('.page-content').forEach(p => p.classList.toggle('active', p.id === page + 'Page'));
    const titles = { dashboard: 'Dashboard', 'new-transaction': 'New Transaction' };
    document.getElementById('pageTitle').textContent = titles[page] || page;
}

async function loadDashboardData() {
    let data;
    try {
        data = await apiCall('/dashboard/fragments/overview');
    } catch (err) {
        console.error('Dashboard load failed', err);
        return;
    }

    const profile = data.profile;
    if (profile) {
        const trust = profile.trust_score;
        document.getElementById('trustScoreValue').textContent = trust.toFixed(0);
        const circle = document.getElementById('trustProgressCircle');
        const circumference = 2 * Math.PI * 64;
        circle.style.strokeDashoffset = circumference * (1 - trust / 100);
        circle.style.stroke = profile.trust_color;
        document.getElementById('avgAmount').textContent = '₹' + profile.avg_amount.toFixed(2);
        document.getElementById('avgRiskScore').textContent = profile.avg_risk.toFixed(2);
        document.getElementById('highRiskCount').textContent = profile.high_risk_txns;
        document.getElementById('totalTxnCount').textContent = profile.total_txns;
    }
    if (data.balance !== null && data.balance !== undefined) {
        document.getElementById('balanceValue').textContent = '₹' + data.balance.toFixed(2);
    }

    document.getElementById('recentTxBody').innerHTML = data.html.transactions;
    document.getElementById('recentAlertBody').innerHTML = data.html.alerts;

    const payload = (data.charts || {}).riskTrend;
    if (payload) renderRiskChart(payload);
}

function renderRiskChart(payload) {
    const ctx = document.getElementById('riskTrendChart');
    if (riskChart) riskChart.destroy();
    const colors = { 'Avg Risk': ['rgb(239,68,68)', 'rgba(239,68,68,0.1)'], 'Trust Score': ['rgb(16,185,129)', 'rgba(16,185,129,0.1)'] };
    riskChart = new Chart(ctx, {
        type: 'line',
        data: {
            labels: payload.labels,
            datasets: payload.series.map(s => {
                const c = colors[s.label] || ['rgb(59,130,246)', 'rgba(59,130,246,0.1)'];
                return { label: s.label, data: s.values, borderColor: c[0], backgroundColor: c[1], tension: 0.4, fill: true };
            }),
        },
        options: {
            responsive: true, maintainAspectRatio: false,
            plugins: { legend: { display: true, position: 'top' } },
            scales: { y: { beginAtZero: true, max: 100 } },
        },
    });
}

async function handleTransactionSubmit(e) {
    e.preventDefault();
    const form = e.target;
    const fd = new FormData(form);
    const num = v => (v === '' || v === null) ? null : parseFloat(v);

    const payload = {
        amount: parseFloat(fd.get('amount')),
        channel: fd.get('channel'),
        currency: fd.get('currency') || '',
        merchant_type: fd.get('merchantType') || '',
        txn_type: fd.get('txnType') || '',
        city: fd.get('city') || '',
        country: fd.get('country') || '',
        lat: num(fd.get('latitude')),
        lon: num(fd.get('longitude')),
        device_type: fd.get('deviceType') || '',
        device_os: fd.get('deviceOS') || '',
    };

    document.getElementById('loaderOverlay').classList.add('show');
    try {
        const data = await apiCall('/transactions', { method: 'POST', body: JSON.stringify(payload) });
        document.getElementById('resultContent').innerHTML = data.html;
        document.getElementById('resultCard').style.display = 'block';
        form.reset();
        loadDashboardData();
    } catch (err) {
        showNotification(err.message || 'Failed to process transaction. Please try again.', 'error');
    } finally {
        document.getElementById('loaderOverlay').classList.remove('show');
    }
}

document.addEventListener('DOMContentLoaded', () => {
    document.querySelectorAll('.nav-item').forEach(item => {
        item.addEventListener('click', e => { e.preventDefault(); navigateToPage(item.dataset.page); });
    });
    document.getElementById('logoutBtn').addEventListener('click', async () => {
        try { await apiCall('/auth/logout', { method: 'POST' }); } finally { window.location.href = '/login'; }
    });
    document.getElementById('refreshBtn').addEventListener('click', () => {
        if (currentPage === 'dashboard') loadDashboardData();
    });
    document.getElementById('transactionForm').addEventListener('submit', handleTransactionSubmit);
    document.getElementById('resetForm').addEventListener('click', () => document.getElementById('transactionForm').reset());
    document.getElementById('closeResult').addEventListener('click', () => {
        document.getElementById('resultCard').style.display = 'none';
    });
    navigateToPage(document.body.dataset.initialPage || 'dashboard');
    loadDashboardData();
});
</script>
</body>
</html>
`
