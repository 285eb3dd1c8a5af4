package ui

// AdminPage is the admin console shell. Tables, panels and charts are filled
// in from the fragment endpoints under /admin/fragments/.
const AdminPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>FraudLens · Admin</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.0/dist/chart.umd.min.js"></script>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
:root { --primary:#3b82f6; --success:#10b981; --warning:#f59e0b; --danger:#ef4444;
        --bg:#0f172a; --card:#1e293b; --line:#334155; --text:#e2e8f0; --gray:#94a3b8; }
* { margin:0; padding:0; box-sizing:border-box; font-family:'Segoe UI',system-ui,sans-serif; }
body { background:var(--bg); color:var(--text); display:flex; min-height:100vh; }
.sidebar { width:230px; background:var(--card); padding:24px 16px; display:flex; flex-direction:column; flex-shrink:0; }
.brand { font-size:20px; font-weight:700; margin-bottom:32px; padding-left:8px; }
.nav-item { display:flex; justify-content:space-between; align-items:center; padding:11px 14px; border-radius:8px;
            color:var(--gray); text-decoration:none; font-size:14px; margin-bottom:4px; cursor:pointer; }
.nav-item:hover { background:rgba(59,130,246,.08); color:var(--text); }
.nav-item.active { background:var(--primary); color:white; }
.nav-badge { background:var(--danger); color:white; border-radius:10px; font-size:11px; padding:1px 8px; }
.user-box { margin-top:auto; display:flex; align-items:center; gap:10px; padding:10px 8px; border-top:1px solid var(--line); }
.avatar { width:36px; height:36px; border-radius:50%; background:var(--primary); display:flex; align-items:center; justify-content:center; font-weight:700; }
.main { flex:1; padding:28px 32px; overflow-x:hidden; }
.topbar { display:flex; justify-content:space-between; align-items:center; margin-bottom:24px; }
.topbar h2 { font-size:22px; }
.btn { padding:9px 16px; border:none; border-radius:8px; font-size:13px; font-weight:600; cursor:pointer; }
.btn-primary { background:var(--primary); color:white; }
.btn-ghost { background:transparent; color:var(--gray); border:1px solid var(--line); }
.page-content { display:none; }
.page-content.active { display:block; }
.stat-row { display:grid; grid-template-columns:repeat(auto-fit,minmax(180px,1fr)); gap:16px; margin-bottom:24px; }
.stat-card { background:var(--card); border-radius:12px; padding:20px; }
.stat-card .label { color:var(--gray); font-size:13px; margin-bottom:6px; }
.stat-card .value { font-size:28px; font-weight:700; }
.panel { background:var(--card); border-radius:12px; padding:20px; margin-bottom:20px; }
.panel h4 { font-size:15px; margin-bottom:14px; }
.chart-box { position:relative; height:300px; }
.grid-2 { display:grid; grid-template-columns:2fr 1fr; gap:20px; }
table { width:100%; border-collapse:collapse; font-size:13px; }
th { text-align:left; color:var(--gray); font-weight:600; padding:10px 12px; border-bottom:1px solid var(--line); }
td { padding:10px 12px; border-bottom:1px solid rgba(51,65,85,.5); }
.users-section-row td { color:var(--gray); font-weight:700; text-transform:uppercase; font-size:11px; background:rgba(51,65,85,.3); }
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
.btn-action { padding:5px 12px; border:none; border-radius:6px; font-size:12px; cursor:pointer; }
.btn-view { background:rgba(59,130,246,.15); color:var(--primary); }
.btn-resolve { background:rgba(16,185,129,.15); color:var(--success); }
.resolved-marker { color:var(--gray); font-size:13px; }
input, select, textarea { padding:9px 12px; border:1px solid var(--line); border-radius:8px; background:var(--bg); color:var(--text); font-size:13px; }
input:focus, select:focus, textarea:focus { outline:none; border-color:var(--primary); }
.form-grid { display:grid; grid-template-columns:repeat(auto-fit,minmax(200px,1fr)); gap:14px; margin-bottom:14px; }
.form-grid label { display:block; font-size:12px; color:var(--gray); margin-bottom:5px; }
.form-grid input, .form-grid select { width:100%; }
#geoMap { height:420px; border-radius:12px; }
.modal { display:none; position:fixed; inset:0; background:rgba(15,23,42,.8); align-items:center; justify-content:center; z-index:50; }
.modal.show { display:flex; }
.modal-card { background:var(--card); border-radius:12px; padding:24px; width:100%; max-width:420px; }
.modal-card h4 { margin-bottom:16px; }
.modal-card label { display:block; font-size:12px; color:var(--gray); margin:12px 0 5px; }
.modal-card select, .modal-card textarea { width:100%; }
.modal-actions { display:flex; gap:10px; justify-content:flex-end; margin-top:20px; }
.intel-panel { margin-bottom:18px; }
.panel-empty { color:var(--gray); font-size:14px; }
.profile-grid { display:grid; gap:12px; }
.profile-stat { display:flex; justify-content:space-between; align-items:center; }
.stat-label { color:var(--gray); font-size:13px; }
.stat-value { font-size:18px; font-weight:600; }
.ai-section { margin-bottom:18px; }
.ai-heading { margin-bottom:8px; }
.ai-behaviour { color:var(--primary); }
.ai-speculation { color:var(--warning); }
.ai-investigation { color:var(--danger); }
.ai-body { color:var(--gray); font-size:14px; line-height:1.6; }
.ai-score { font-size:24px; font-weight:700; }
.ai-section ul { margin-top:8px; padding-left:20px; color:var(--gray); font-size:13px; }
.intel-list { display:grid; gap:12px; max-height:400px; overflow-y:auto; }
.intel-item { padding:12px; background:var(--bg); border-radius:8px; border-left:3px solid var(--line); }
.intel-item-head { display:flex; justify-content:space-between; margin-bottom:4px; }
.intel-item-id { font-weight:600; font-size:13px; }
.intel-item-body { font-size:12px; color:var(--gray); }
.toast-stack { position:fixed; top:20px; right:20px; z-index:100; display:flex; flex-direction:column; gap:8px; }
.toast { padding:12px 18px; border-radius:8px; color:white; font-size:13px; min-width:240px; }
.toast.success { background:var(--success); } .toast.error { background:var(--danger); }
.toast.warning { background:var(--warning); } .toast.info { background:var(--primary); }
</style>
</head>
<body data-initial-page="">
<aside class="sidebar">
    <div class="brand">FraudLens</div>
    <a class="nav-item active" data-page="overview">Overview</a>
    <a class="nav-item" data-page="users">Users</a>
    <a class="nav-item" data-page="analytics">Analytics</a>
    <a class="nav-item" data-page="alerts"><span>Risk Alerts</span><span class="nav-badge" id="alertsBadge">0</span></a>
    <a class="nav-item" data-page="intelligence">User Intelligence</a>
    <div class="user-box">
        <div class="avatar" id="userInitials">A</div>
        <div style="flex:1;"><div id="userName" style="font-size:14px;">Admin</div></div>
        <button class="btn btn-ghost" id="logoutBtn">Exit</button>
    </div>
</aside>
<main class="main">
    <div class="topbar">
        <h2 id="pageTitle">Overview</h2>
        <button class="btn btn-ghost" id="refreshBtn">Refresh</button>
    </div>

    <div class="page-content active" id="overviewPage">
        <div class="stat-row">
            <div class="stat-card"><div class="label">Total Users</div><div class="value" id="totalUsers">0</div></div>
            <div class="stat-card"><div class="label">Open Alerts</div><div class="value" id="openAlerts">0</div></div>
            <div class="stat-card"><div class="label">Transactions Today</div><div class="value" id="txnsToday">0</div></div>
            <div class="stat-card"><div class="label">Avg Risk Today</div><div class="value" id="avgRisk">0</div></div>
        </div>
        <div class="grid-2">
            <div class="panel"><h4>Global Risk Trend (30d)</h4><div class="chart-box"><canvas id="riskTrendChart"></canvas></div></div>
            <div class="panel"><h4>Risk Distribution</h4><div class="chart-box"><canvas id="riskDistributionChart"></canvas></div></div>
        </div>
    </div>

    <div class="page-content" id="usersPage">
        <div class="panel">
            <h4>Create User</h4>
            <form id="createUserForm">
                <div class="form-grid">
                    <div><label>Name</label><input id="newUserName" required></div>
                    <div><label>Email</label><input id="newUserEmail" type="email" required></div>
                    <div><label>Password</label><input id="newUserPassword" type="password" required></div>
                    <div><label>Role</label><select id="newUserRole"><option value="user">user</option><option value="admin">admin</option></select></div>
                </div>
                <button class="btn btn-primary" type="submit">Create</button>
                <button class="btn btn-ghost" type="button" id="resetCreateUser">Reset</button>
            </form>
        </div>
        <div class="panel">
            <div style="display:flex; justify-content:space-between; margin-bottom:14px;">
                <h4>Users</h4>
                <input id="userSearch" placeholder="Search users..." style="width:260px;">
            </div>
            <table>
                <thead><tr><th>Code</th><th>Name</th><th>Email</th><th>Role</th><th>Status</th><th>Created</th><th></th></tr></thead>
                <tbody id="usersTableBody"><tr><td colspan="7" class="loading">Loading...</td></tr></tbody>
            </table>
        </div>
    </div>

    <div class="page-content" id="analyticsPage">
        <div class="panel">
            <div style="display:flex; justify-content:space-between; margin-bottom:14px;">
                <h4>Geographic Risk Hotspots</h4>
                <select id="geoTimeRange"><option value="7">7 days</option><option value="30" selected>30 days</option><option value="90">90 days</option></select>
            </div>
            <div id="geoMap"></div>
        </div>
        <div class="panel"><h4>Global Risk Trend</h4><div class="chart-box"><canvas id="globalTrendChart"></canvas></div></div>
        <div class="panel"><h4>Transaction Volume</h4><div class="chart-box"><canvas id="volumeChart"></canvas></div></div>
        <div class="panel"><h4>Fraud Trend</h4><div class="chart-box"><canvas id="fraudTrendChart"></canvas></div></div>
    </div>

    <div class="page-content" id="alertsPage">
        <div class="panel">
            <div style="display:flex; justify-content:space-between; margin-bottom:14px;">
                <h4>Risk Alerts</h4>
                <select id="alertFilter"><option value="all">All</option><option value="open">Open</option><option value="closed">Closed</option></select>
            </div>
            <table>
                <thead><tr><th>Alert</th><th>User</th><th>Level</th><th>Score</th><th>Status</th><th>Created</th><th></th></tr></thead>
                <tbody id="alertsTableBody"><tr><td colspan="7" class="loading">Loading...</td></tr></tbody>
            </table>
        </div>
    </div>

    <div class="page-content" id="intelligencePage">
        <div class="panel">
            <h4>User Intelligence</h4>
            <div style="display:flex; gap:10px;">
                <input id="intelUserId" placeholder="User code, email or ID" style="flex:1;">
                <button class="btn btn-primary" id="searchIntelBtn">Analyze</button>
            </div>
        </div>
        <div id="intelResults" style="display:none;">
            <div id="intelPanels"></div>
            <div class="panel"><h4>30-Day Risk Trend</h4><div class="chart-box"><canvas id="intelRiskChart"></canvas></div></div>
        </div>
    </div>
</main>

<div class="modal" id="alertModal">
    <div class="modal-card">
        <h4>Resolve Alert</h4>
        <label>Status</label>
        <select id="alertStatus"><option value="closed">Closed</option><option value="open">Keep Open</option></select>
        <label>Note</label>
        <textarea id="alertNote" rows="3" placeholder="Resolution note"></textarea>
        <div class="modal-actions">
            <button class="btn btn-ghost" id="cancelResolve">Cancel</button>
            <button class="btn btn-primary" id="confirmResolve">Confirm</button>
        </div>
    </div>
</div>
<div class="toast-stack" id="toastStack"></div>

<script>
let currentPage = 'overview';
let charts = {};
let geoMap = null;
let currentAlertId = null;

const seriesColors = {
    'Avg Risk Score': ['rgb(239,68,68)', 'rgba(239,68,68,0.1)'],
    'Avg Risk': ['rgb(239,68,68)', 'rgba(239,68,68,0.1)'],
    'Avg Fraud Probability': ['rgb(245,158,11)', 'rgba(245,158,11,0.1)'],
    'High Risk Events': ['rgb(249,115,22)', 'rgba(249,115,22,0.1)'],
    'Trust Score': ['rgb(16,185,129)', 'rgba(16,185,129,0.1)'],
};
const doughnutColors = ['rgb(59,130,246)', 'rgb(245,158,11)', 'rgb(249,115,22)', 'rgb(239,68,68)'];
const countSlots = ['volume', 'fraudTrend'];

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

function renderChart(canvasId, slot, payload) {
    const ctx = document.getElementById(canvasId);
    if (!ctx || !payload) return;
    if (charts[slot]) charts[slot].destroy();

    if (payload.kind === 'doughnut') {
        charts[slot] = new Chart(ctx, {
            type: 'doughnut',
            data: {
                labels: payload.labels,
                datasets: [{ data: payload.series[0].values, backgroundColor: doughnutColors }],
            },
            options: { responsive: true, maintainAspectRatio: false, plugins: { legend: { position: 'bottom' } } },
        });
        return;
    }

    if (payload.kind === 'bar') {
        charts[slot] = new Chart(ctx, {
            type: 'bar',
            data: {
                labels: payload.labels,
                datasets: payload.series.map(s => ({
                    label: s.label, data: s.values,
                    backgroundColor: 'rgba(99,102,241,0.5)', borderColor: 'rgb(99,102,241)', borderWidth: 1,
                })),
            },
            options: {
                responsive: true, maintainAspectRatio: false,
                scales: { y: { beginAtZero: true } },
            },
        });
        return;
    }

    const yScale = { beginAtZero: true };
    if (!countSlots.includes(slot)) yScale.max = 100;
    charts[slot] = new Chart(ctx, {
        type: payload.kind,
        data: {
            labels: payload.labels,
            datasets: payload.series.map(s => {
                const colors = seriesColors[s.label] || ['rgb(59,130,246)', 'rgba(59,130,246,0.1)'];
                return { label: s.label, data: s.values, borderColor: colors[0], backgroundColor: colors[1], tension: 0.4, fill: true };
            }),
        },
        options: {
            responsive: true, maintainAspectRatio: false,
            plugins: { legend: { display: true, position: 'top' } },
            scales: { y: yScale },
        },
    });
}

function debounce(fn, wait) {
    let t;
    return (...args) => { clearTimeout(t); t = setTimeout(() => fn(...args), wait); };
}

function navigateToPage(page) {
    currentPage = page;
    document.querySelectorAll('.nav-item').forEach(i => i.classList.toggle('active', i.dataset.page === page));
    document.querySelectorAll('.page-content').forEach(p => p.classList.toggle('active', p.id === page + 'Page'));
    const titles = { overview: 'Overview', users: 'Users', analytics: 'Analytics', alerts: 'Alerts', intelligence: 'Intelligence' };
    document.getElementById('pageTitle').textContent = titles[page] || page;
    loadPageData(page);
}

async function loadPageData(page) {
    try {
        switch (page) {
            case 'overview': await loadOverview(); break;
            case 'users': await loadUsers(document.getElementById('userSearch').value); break;
            case 'analytics': await loadAnalytics(); break;
            case 'alerts': await loadAlerts(); break;
        }
    } catch (err) {
        console.error('Error loading ' + page + ':', err);
    }
}

async function loadOverview() {
    const data = await apiCall('/admin/fragments/overview');
    document.getElementById('totalUsers').textContent = data.total_users;
    document.getElementById('openAlerts').textContent = data.open_alerts;
    document.getElementById('alertsBadge').textContent = data.open_alerts;
    document.getElementById('txnsToday').textContent = data.txns_today;
    document.getElementById('avgRisk').textContent = (data.avg_risk_today || 0).toFixed(1);
    renderChart('riskTrendChart', 'riskTrend', (data.charts || {}).riskTrend);
    renderChart('riskDistributionChart', 'riskDistribution', (data.charts || {}).riskDistribution);
}

async function loadUsers(query = '') {
    const path = query ? '/admin/fragments/users?q=' + encodeURIComponent(query) : '/admin/fragments/users';
    const data = await apiCall(path);
    document.getElementById('usersTableBody').innerHTML = data.html;
}

async function loadAnalytics() {
    const days = document.getElementById('geoTimeRange').value || 30;
    const data = await apiCall('/admin/fragments/analytics?days=' + days);
    renderGeoMap(data.points || []);
    const chartData = data.charts || {};
    renderChart('globalTrendChart', 'globalTrend', chartData.globalTrend);
    renderChart('volumeChart', 'volume', chartData.volume);
    renderChart('fraudTrendChart', 'fraudTrend', chartData.fraudTrend);
}

function renderGeoMap(points) {
    if (!geoMap) {
        geoMap = L.map('geoMap').setView([20, 0], 2);
        L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
            attribution: '© OpenStreetMap contributors'
        }).addTo(geoMap);
    } else {
        geoMap.eachLayer(layer => {
            if (layer instanceof L.Marker || layer instanceof L.Circle) geoMap.removeLayer(layer);
        });
    }

    points.forEach(p => {
        L.circle([p.lat, p.lon], { color: p.color, fillColor: p.color, fillOpacity: 0.3, radius: p.radius })
            .bindPopup('<b>' + p.label + '</b><br>Transactions: ' + p.txn_count +
                '<br>Avg risk: ' + p.avg_risk.toFixed(1) + '<br>High risk: ' + p.high_risk_count)
            .addTo(geoMap);
    });
}

async function loadAlerts() {
    const filter = document.getElementById('alertFilter').value || 'all';
    const data = await apiCall('/admin/fragments/alerts?status=' + filter);
    document.getElementById('alertsTableBody').innerHTML = data.html;
    document.getElementById('alertsBadge').textContent = data.open_count;
    document.querySelectorAll('#alertsTableBody .btn-resolve').forEach(btn => {
        btn.addEventListener('click', () => openResolveModal(btn.dataset.alertId));
    });
}

function openResolveModal(alertId) {
    currentAlertId = alertId;
    document.getElementById('alertModal').classList.add('show');
}

function closeModal() {
    document.getElementById('alertModal').classList.remove('show');
    currentAlertId = null;
}

async function confirmResolveAlert() {
    if (!currentAlertId) return;
    try {
        await apiCall('/admin/alerts/' + encodeURIComponent(currentAlertId), {
            method: 'PATCH',
            body: JSON.stringify({
                status: document.getElementById('alertStatus').value,
                note: document.getElementById('alertNote').value,
            }),
        });
        closeModal();
        loadAlerts();
    } catch (err) {
        showNotification('Failed to resolve alert', 'error');
    }
}

async function searchIntelligence() {
    const userId = document.getElementById('intelUserId').value.trim();
    if (!userId) {
        showNotification('Please enter a User ID', 'warning');
        return;
    }
    try {
        const data = await apiCall('/admin/intel', { method: 'POST', body: JSON.stringify({ user_id: userId }) });
        document.getElementById('intelResults').style.display = 'block';
        document.getElementById('intelPanels').innerHTML = data.html;
        renderChart('intelRiskChart', 'intelRisk', (data.charts || {}).intelRisk);
    } catch (err) {
        showNotification(err.message || 'Error fetching intelligence data', 'error');
    }
}

function viewUserIntel(identifier) {
    document.getElementById('intelUserId').value = identifier;
    navigateToPage('intelligence');
    setTimeout(() => searchIntelligence(), 300);
}

async function handleCreateUser(e) {
    e.preventDefault();
    try {
        await apiCall('/admin/users', {
            method: 'POST',
            body: JSON.stringify({
                name: document.getElementById('newUserName').value.trim(),
                email: document.getElementById('newUserEmail').value.trim(),
                password: document.getElementById('newUserPassword').value,
                role: document.getElementById('newUserRole').value || 'user',
            }),
        });
        document.getElementById('createUserForm').reset();
        loadUsers(document.getElementById('userSearch').value || '');
    } catch (err) {
        showNotification(err.message || 'Failed to create user', 'error');
    }
}

document.addEventListener('DOMContentLoaded', () => {
    document.querySelectorAll('.nav-item').forEach(item => {
        item.addEventListener('click', e => { e.preventDefault(); navigateToPage(item.dataset.page); });
    });
    document.getElementById('logoutBtn').addEventListener('click', async () => {
        try { await apiCall('/auth/logout', { method: 'POST' }); } finally { window.location.href = '/login'; }
    });
    document.getElementById('refreshBtn').addEventListener('click', () => loadPageData(currentPage));
    document.getElementById('userSearch').addEventListener('input', debounce(e => loadUsers(e.target.value), 500));
    document.getElementById('alertFilter').addEventListener('change', loadAlerts);
    document.getElementById('geoTimeRange').addEventListener('change', loadAnalytics);
    document.getElementById('searchIntelBtn').addEventListener('click', searchIntelligence);
    document.getElementById('cancelResolve').addEventListener('click', closeModal);
    document.getElementById('confirmResolve').addEventListener('click', confirmResolveAlert);
    document.getElementById('createUserForm').addEventListener('submit', handleCreateUser);
    document.getElementById('resetCreateUser').addEventListener('click', () => document.getElementById('createUserForm').reset());
    document.getElementById('usersTableBody').addEventListener('click', e => {
        const btn = e.target.closest('.btn-view');
        if (btn) viewUserIntel(btn.dataset.intelKey);
    });
    navigateToPage(document.body.dataset.initialPage || 'overview');
});
</script>
</body>
</html>
`
